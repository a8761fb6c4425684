package contract

type EventType string

const (
	EventPing EventType = "ping"

	EventConnectionKill EventType = "CONNECTION_KILL"
	EventSessionExpired EventType = "SESSION_EXPIRED"
	EventAck            EventType = "ACK"

	EventClientCreated EventType = "CLIENT_CREATED"
	EventClientUpdated EventType = "CLIENT_UPDATED"
	EventClientDeleted EventType = "CLIENT_DELETED"

	EventDocumentGenerated EventType = "DOCUMENT_GENERATED"

	EventUserUpdated EventType = "USER_UPDATED"
)

type KillCode int

const (
	KillCodeSuspended KillCode = iota + 4000
	KillCodeDeleted
	KillCodeSessionExpired
)

// IncomingSocketMessage is used for messages we receive from the users.
type IncomingSocketMessage struct {
	Type EventType `json:"type"`
}

// OutgoingSocketMessage is what we send to the Client
type OutgoingSocketMessage struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}
