package cognitoclient

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// User is the default user struct for all basic Cognito operations.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserConfirmation is the default structure for approving e-mail verification.
type UserConfirmation struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// UserLogin defines the standard structure for logging in to the application.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthCreate represents the response of Cognito sign in approval.
type AuthCreate struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

type CognitoInterface interface {
	SignUp(user *User) (string, error)
	SignIn(user *UserLogin) (*AuthCreate, error)
	GlobalSignOut(accessToken string) error
	ConfirmAccount(user *UserConfirmation) error
	ResendConfirmation(email string) error
	AdminDeleteUser(email string) error
}

type cognitoClient struct {
	cognitoClient *cognito.Client
	appClientId   string
	userPoolId    string
}

func InitCognitoClient(appClientId string) (CognitoInterface, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(os.Getenv("AWS_COGNITO_REGION")),
	)
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		cognitoClient: cognito.NewFromConfig(cfg),
		appClientId:   appClientId,
		userPoolId:    os.Getenv("AWS_COGNITO_USER_POOL_ID"),
	}, nil
}

// SignUp creates a new user row on Cognito and return its "sub" (the UUID)
func (c *cognitoClient) SignUp(user *User) (string, error) {
	input := &cognito.SignUpInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(user.Email),
		Password: aws.String(user.Password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(user.Email),
			},
		},
	}
	out, err := c.cognitoClient.SignUp(context.Background(), input)
	if err != nil {
		return "", err
	}
	return *out.UserSub, nil
}

// GlobalSignOut signs out all the user session in all devices.
// In other words, it invalidates all the existing JWT tokens
func (c *cognitoClient) GlobalSignOut(accessToken string) error {
	_, err := c.cognitoClient.GlobalSignOut(context.Background(), &cognito.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	return err
}

// ConfirmAccount is used to verify the user's e-mail address
func (c *cognitoClient) ConfirmAccount(user *UserConfirmation) error {
	_, err := c.cognitoClient.ConfirmSignUp(context.Background(), &cognito.ConfirmSignUpInput{
		Username:         aws.String(user.Email),
		ConfirmationCode: aws.String(user.Code),
		ClientId:         aws.String(c.appClientId),
	})
	return err
}

// ResendConfirmation resends the verification code to the provided e-mail
func (c *cognitoClient) ResendConfirmation(email string) error {
	_, err := c.cognitoClient.ResendConfirmationCode(context.Background(), &cognito.ResendConfirmationCodeInput{
		Username: aws.String(email),
		ClientId: aws.String(c.appClientId),
	})
	return err
}

// AdminDeleteUser removes the Cognito row entirely. Used to revert a signup
// when our own database insert fails afterwards.
func (c *cognitoClient) AdminDeleteUser(email string) error {
	_, err := c.cognitoClient.AdminDeleteUser(context.Background(), &cognito.AdminDeleteUserInput{
		Username:   aws.String(email),
		UserPoolId: aws.String(c.userPoolId),
	})
	return err
}

// SignIn signs the user in... pretty straightforward
func (c *cognitoClient) SignIn(user *UserLogin) (*AuthCreate, error) {
	input := &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": user.Email,
			"PASSWORD": user.Password,
		},
		ClientId: aws.String(c.appClientId),
	}
	result, err := c.cognitoClient.InitiateAuth(context.Background(), input)
	if err != nil {
		return nil, err
	}
	return &AuthCreate{
		IDToken:     *result.AuthenticationResult.IdToken,
		AccessToken: *result.AuthenticationResult.AccessToken,
	}, nil
}
