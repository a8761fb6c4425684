package events

import "github.com/Kaiser28/comptable-dashboard-sub001/internal/contract"

type SocketEvent interface {
	GetType() contract.EventType
}

type Ack struct{}

func (*Ack) GetType() contract.EventType {
	return contract.EventAck
}

type ConnectionKill struct {
	Code   contract.KillCode `json:"code"`
	Reason *string           `json:"reason,omitempty"`
}

func (e *ConnectionKill) GetType() contract.EventType {
	return contract.EventConnectionKill
}

type SessionExpired struct{}

func (*SessionExpired) GetType() contract.EventType {
	return contract.EventSessionExpired
}

type ClientCreated struct {
	*contract.ClientResponse
}

func (e *ClientCreated) GetType() contract.EventType {
	return contract.EventClientCreated
}

type ClientUpdated struct {
	*contract.ClientResponse
}

func (e *ClientUpdated) GetType() contract.EventType {
	return contract.EventClientUpdated
}

type ClientDeleted struct {
	ClientID int64 `json:"id"`
}

func (e *ClientDeleted) GetType() contract.EventType {
	return contract.EventClientDeleted
}

type DocumentGenerated struct {
	*contract.DocumentResponse
}

func (e *DocumentGenerated) GetType() contract.EventType {
	return contract.EventDocumentGenerated
}

type UserUpdated struct {
	*contract.UserResponse
}

func (e *UserUpdated) GetType() contract.EventType {
	return contract.EventUserUpdated
}
