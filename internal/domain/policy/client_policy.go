package policy

import (
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
)

const (
	mngClients = entity.PermissionManageClients
	delClients = entity.PermissionDeleteClients
	genDocs    = entity.PermissionGenerateDocuments
	delDocs    = entity.PermissionDeleteDocuments
)

// ClientPolicy encapsulates all business rules for client-file manipulation.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type ClientPolicy struct{}

func NewClientPolicy() *ClientPolicy {
	return &ClientPolicy{}
}

func (p *ClientPolicy) CanManage(actor *entity.User) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(mngClients) {
		return permError(mngClients)
	}
	return nil
}

func (p *ClientPolicy) CanDelete(actor *entity.User) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(delClients) {
		return permError(delClients)
	}
	return nil
}

func (p *ClientPolicy) CanGenerateDocuments(actor *entity.User) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(genDocs) {
		return permError(genDocs)
	}
	return nil
}

func (p *ClientPolicy) CanDeleteDocuments(actor *entity.User) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(delDocs) {
		return permError(delDocs)
	}
	return nil
}
