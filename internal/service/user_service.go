package service

import (
	"context"
	"strconv"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/events"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	cognitoclient "github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/aws/cognito"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/uid"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindAllActive() ([]*entity.User, error)
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	FindActiveByID(id int64) (*entity.User, error)
	FindByID(id int64) (*entity.User, error)
	SoftDelete(user *entity.User) error
	ExistsActiveByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo   UserRepository
	Validate   *validator.Validate
	Cognito    cognitoclient.CognitoInterface
	UserPolicy *policy.UserPolicy
	WSService  *WebSocketService
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	cogClient cognitoclient.CognitoInterface,
	userPolicy *policy.UserPolicy,
	wsService *WebSocketService,
) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		Validate:   validate,
		Cognito:    cogClient,
		UserPolicy: userPolicy,
		WSService:  wsService,
	}
}

func (u *UserService) GetUsers(actor *entity.User) ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAllActive()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user, actor)
	}
	return resp, nil
}

func (u *UserService) GetUser(actor *entity.User, rawId string) (*contract.UserResponse, apierror.ErrorResponse) {
	user, apierr := u.fetchUser(actor, rawId, true)
	if apierr != nil {
		return nil, apierr
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user, actor), nil
}

func (u *UserService) UpdateUser(actor *entity.User, targetId string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	target, apierr := u.fetchByID(targetId, false)
	if apierr != nil {
		return nil, apierr
	}

	if target == nil {
		return nil, apierror.NotFoundError
	}

	updater := &userUpdater{
		actor:  actor,
		target: target,
		policy: u.UserPolicy,
	}

	updater.setProfileString(req.Nom, &target.Nom)
	updater.setProfileString(req.Prenom, &target.Prenom)
	updater.setProfileString(req.CabinetNom, &target.CabinetNom)
	updater.setPermissions(req.Perms)
	updater.setSuspended(req.Suspended)

	if updater.err != nil {
		return nil, updater.err
	}

	if updater.dirty {
		target.UpdatedAt = utils.NowUTC()
		if err := u.UserRepo.Save(target); err != nil {
			log.Errorf("actor %s failed to update user %s: %v", actor.SubUUID, targetId, err)
			return nil, apierror.InternalServerError
		}

		resp := toUserResponse(target, actor)
		go u.WSService.Dispatch(context.Background(), target.ID, &events.UserUpdated{UserResponse: resp})

		if target.Suspended {
			go u.WSService.TerminateUserConnections(context.Background(), target.ID, &events.ConnectionKill{
				Code: contract.KillCodeSuspended,
			})
		}
	}
	return toUserResponse(target, actor), nil
}

func (u *UserService) DeleteUser(actor *entity.User, targetRawID string) apierror.ErrorResponse {
	target, apierr := u.fetchByID(targetRawID, false)
	if apierr != nil {
		return apierr
	}

	if target == nil {
		return apierror.NotFoundError
	}

	if perr := u.UserPolicy.CanDeleteUser(actor, target); perr != nil {
		return perr
	}

	if derr := u.UserRepo.SoftDelete(target); derr != nil {
		log.Errorf("failed to delete user %d: %v", target.ID, derr)
		return apierror.InternalServerError
	}

	go u.WSService.TerminateUserConnections(context.Background(), target.ID, &events.ConnectionKill{
		Code: contract.KillCodeDeleted,
	})
	return nil
}

func (u *UserService) CheckEmail(req *contract.UserStatusRequest) (*contract.EmailStatus, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	var status contract.EmailStatus
	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user (%s) exists: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	switch {
	case user == nil:
		status = contract.EmailStatusAvailable
	case !user.EmailVerified:
		status = contract.EmailStatusVerifying
	default:
		status = contract.EmailStatusExists
	}
	return &status, nil
}

// CreateUser creates a new user on Cognito (as well as in our database),
// and sends a verification code to the user's email address.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.UserAlreadyExistsError
	}

	cogUser := &cognitoclient.User{Email: req.Email, Password: req.Password}
	sub, apierr, revert := handleUserSignup(u.Cognito, cogUser)
	if apierr != nil {
		return apierr
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:            uid.Generate(),
		SubUUID:       sub,
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		CabinetNom:    req.CabinetNom,
		Email:         req.Email,
		EmailVerified: false,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = u.UserRepo.Save(user)
	if err != nil {
		revert()
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.Suspended {
		return nil, apierror.UserMissingPermsError
	}

	credentials := &cognitoclient.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	}

	auth, err := u.Cognito.SignIn(credentials)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}
	return &contract.UserLoginResponse{AccessToken: auth.AccessToken, IDToken: auth.IDToken}, nil
}

func (u *UserService) Logout(accessToken string) apierror.ErrorResponse {
	if err := u.Cognito.GlobalSignOut(accessToken); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (u *UserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	confirms := &cognitoclient.UserConfirmation{
		Email: req.Email,
		Code:  req.Code,
	}

	if err := u.Cognito.ConfirmAccount(confirms); err != nil {
		return utils.MapCognitoError(err)
	}

	user.EmailVerified = true
	user.UpdatedAt = utils.NowUTC()
	err = u.UserRepo.Save(user)
	if err != nil {
		log.Errorf("failed to update user (%d) verified status: %v", user.ID, err)
	}
	return nil
}

func (u *UserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to find user (%s) by email: %v", req.Email, err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	if err := u.Cognito.ResendConfirmation(req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (u *UserService) FetchBySub(sub string) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindActiveBySub(sub)
	if err != nil {
		log.Errorf("failed to find user (%s) by sub: %v", sub, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

// fetchUser tries to resolve the params into a real user.
//
// When 'force' is 'true', even deleted users can be returned.
func (u *UserService) fetchUser(requester *entity.User, rawId string, force bool) (*entity.User, apierror.ErrorResponse) {
	if rawId == "@me" {
		return requester, nil
	}
	return u.fetchByID(rawId, force)
}

func (u *UserService) fetchByID(rawId string, force bool) (*entity.User, apierror.ErrorResponse) {
	userId, err := strconv.ParseInt(rawId, 10, 64)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int64")
	}

	var user *entity.User
	if force {
		user, err = u.UserRepo.FindByID(userId)
	} else {
		user, err = u.UserRepo.FindActiveByID(userId)
	}

	if err != nil {
		log.Errorf("failed to find user (%s) by id: %v", rawId, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

func handleUserSignup(cogClient cognitoclient.CognitoInterface, req *cognitoclient.User) (string, apierror.ErrorResponse, func()) {
	revert := func() {
		_ = cogClient.AdminDeleteUser(req.Email)
	}

	sub, err := cogClient.SignUp(req)
	if err != nil {
		return "", utils.MapCognitoError(err), revert
	}
	return sub, nil, revert
}

func toUserResponse(user, requester *entity.User) *contract.UserResponse {
	if !user.Active {
		return toDeletedUserResponse(user)
	}

	resp := &contract.UserResponse{
		ID:         user.ID,
		Nom:        user.Nom,
		Prenom:     user.Prenom,
		Email:      user.Email,
		CabinetNom: user.CabinetNom,
		Perms:      int64(user.Permissions),
		CreatedAt:  utils.FormatEpoch(user.CreatedAt),
		UpdatedAt:  utils.FormatEpoch(user.UpdatedAt),
	}

	hasMngUsers := requester.Permissions.HasEffective(entity.PermissionManageUsers)
	hasPunishUsers := requester.Permissions.HasEffective(entity.PermissionPunishUsers)
	if hasMngUsers {
		resp.IsVerified = &user.EmailVerified
	}

	if hasPunishUsers || hasMngUsers {
		resp.Suspended = &user.Suspended
	}
	return resp
}

func toDeletedUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		ID:        user.ID,
		Nom:       "Utilisateur",
		Prenom:    "Supprimé",
		CreatedAt: utils.FormatEpoch(0),
		UpdatedAt: utils.FormatEpoch(0),
	}
}
