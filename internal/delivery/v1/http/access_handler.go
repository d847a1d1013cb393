package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

// AccessHandler обслуживает пользователей, права и роли.
type AccessHandler struct {
	accessUsecase usecase.AccessUC
	logger        logger.Logger
}

func NewAccessHandler(accessUsecase usecase.AccessUC, logger logger.Logger) *AccessHandler {
	return &AccessHandler{accessUsecase: accessUsecase, logger: logger}
}

// addUsers
//
//	@Summary	Добавление пользователей
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddUsersPayload	true	"Пользователи"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"Пользователь уже существует"
//	@Router		/users [post]
func (a *AccessHandler) addUsers(w http.ResponseWriter, r *http.Request) {
	var payload AddUsersPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("add users: malformed body")
		WriteError(w, err)
		return
	}

	users, err := toDomainUsers(payload.Users)
	if err != nil {
		a.logger.Warnf("add users: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.AddUsers(r.Context(), &usecase.AddUsersReq{Users: users}); err != nil {
		a.logger.Warnf("add users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"added": len(users)})
}

// updateUsers
//
//	@Summary	Обновление пользователей
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateUsersPayload	true	"Идентификаторы и новое состояние"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Пользователь не найден"
//	@Failure	409		{object}	ErrorResponse	"Обновление не содержит изменений"
//	@Router		/users [put]
func (a *AccessHandler) updateUsers(w http.ResponseWriter, r *http.Request) {
	var payload UpdateUsersPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("update users: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("update users: %s", err.Error())
		WriteError(w, err)
		return
	}

	users, err := toDomainUsers(payload.Users)
	if err != nil {
		a.logger.Warnf("update users: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.UpdateUsers(r.Context(), &usecase.UpdateUsersReq{IDs: ids, Users: users}); err != nil {
		a.logger.Warnf("update users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": len(ids)})
}

// deleteUsers
//
//	@Summary	Удаление пользователей
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DeleteIDsPayload	true	"Идентификаторы"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Пользователь не найден"
//	@Router		/users [delete]
func (a *AccessHandler) deleteUsers(w http.ResponseWriter, r *http.Request) {
	var payload DeleteIDsPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("delete users: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("delete users: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.DeleteUsers(r.Context(), &usecase.DeleteUsersReq{IDs: ids}); err != nil {
		a.logger.Warnf("delete users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": len(ids)})
}

// getUsers
//
//	@Summary	Пользователи по идентификаторам
//	@Tags		users
//	@Produce	json
//	@Param		ids	query		string	true	"Идентификаторы через запятую"
//	@Success	200	{array}		UserView
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse	"Пользователь не найден"
//	@Router		/users [get]
func (a *AccessHandler) getUsers(w http.ResponseWriter, r *http.Request) {
	ids, err := parseUUIDList(r.URL.Query().Get("ids"))
	if err != nil {
		a.logger.Warnf("get users: %s", err.Error())
		WriteError(w, err)
		return
	}

	users, err := a.accessUsecase.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		a.logger.Warnf("get users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserViews(users))
}

// addPermissions
//
//	@Summary	Добавление прав
//	@Tags		permissions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddNamedPayload	true	"Права"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"Право уже существует"
//	@Router		/permissions [post]
func (a *AccessHandler) addPermissions(w http.ResponseWriter, r *http.Request) {
	var payload AddNamedPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("add permissions: malformed body")
		WriteError(w, err)
		return
	}

	permissions, err := toDomainPermissions(payload.Items)
	if err != nil {
		a.logger.Warnf("add permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.AddPermissions(r.Context(), &usecase.AddPermissionsReq{Permissions: permissions}); err != nil {
		a.logger.Warnf("add permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"added": len(permissions)})
}

// updatePermissions
//
//	@Summary	Обновление прав
//	@Tags		permissions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateNamedPayload	true	"Идентификаторы и новое состояние"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Право не найдено"
//	@Failure	409		{object}	ErrorResponse	"Обновление не содержит изменений"
//	@Router		/permissions [put]
func (a *AccessHandler) updatePermissions(w http.ResponseWriter, r *http.Request) {
	var payload UpdateNamedPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("update permissions: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("update permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	permissions, err := toDomainPermissions(payload.Items)
	if err != nil {
		a.logger.Warnf("update permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.UpdatePermissions(r.Context(), &usecase.UpdatePermissionsReq{IDs: ids, Permissions: permissions}); err != nil {
		a.logger.Warnf("update permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": len(ids)})
}

// deletePermissions
//
//	@Summary	Удаление прав
//	@Tags		permissions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DeleteIDsPayload	true	"Идентификаторы"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Право не найдено"
//	@Router		/permissions [delete]
func (a *AccessHandler) deletePermissions(w http.ResponseWriter, r *http.Request) {
	var payload DeleteIDsPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("delete permissions: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("delete permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.DeletePermissions(r.Context(), &usecase.DeletePermissionsReq{IDs: ids}); err != nil {
		a.logger.Warnf("delete permissions: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": len(ids)})
}

// addRoles
//
//	@Summary	Добавление ролей
//	@Tags		roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AddNamedPayload	true	"Роли"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"Роль уже существует"
//	@Router		/roles [post]
func (a *AccessHandler) addRoles(w http.ResponseWriter, r *http.Request) {
	var payload AddNamedPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("add roles: malformed body")
		WriteError(w, err)
		return
	}

	roles, err := toDomainRoles(payload.Items)
	if err != nil {
		a.logger.Warnf("add roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.AddRoles(r.Context(), &usecase.AddRolesReq{Roles: roles}); err != nil {
		a.logger.Warnf("add roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"added": len(roles)})
}

// updateRoles
//
//	@Summary	Обновление ролей
//	@Tags		roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateNamedPayload	true	"Идентификаторы и новое состояние"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Роль не найдена"
//	@Failure	409		{object}	ErrorResponse	"Обновление не содержит изменений"
//	@Router		/roles [put]
func (a *AccessHandler) updateRoles(w http.ResponseWriter, r *http.Request) {
	var payload UpdateNamedPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("update roles: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("update roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	roles, err := toDomainRoles(payload.Items)
	if err != nil {
		a.logger.Warnf("update roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.UpdateRoles(r.Context(), &usecase.UpdateRolesReq{IDs: ids, Roles: roles}); err != nil {
		a.logger.Warnf("update roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": len(ids)})
}

// deleteRoles
//
//	@Summary	Удаление ролей
//	@Tags		roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DeleteIDsPayload	true	"Идентификаторы"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Роль не найдена"
//	@Router		/roles [delete]
func (a *AccessHandler) deleteRoles(w http.ResponseWriter, r *http.Request) {
	var payload DeleteIDsPayload
	if err := decodeJSON(r, &payload); err != nil {
		a.logger.Warnf("delete roles: malformed body")
		WriteError(w, err)
		return
	}

	ids, err := parseIDs(payload.IDs)
	if err != nil {
		a.logger.Warnf("delete roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	if err := a.accessUsecase.DeleteRoles(r.Context(), &usecase.DeleteRolesReq{IDs: ids}); err != nil {
		a.logger.Warnf("delete roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": len(ids)})
}

// listRoles
//
//	@Summary	Листинг ролей
//	@Description	Страничный листинг для форм выдачи доступа, читается из Redis
//	@Tags		roles
//	@Produce	json
//	@Param		page		query		int	false	"Номер страницы"
//	@Param		page_size	query		int	false	"Размер страницы"
//	@Success	200	{array}		ListItemView
//	@Failure	404	{object}	ErrorResponse	"Ролей нет"
//	@Router		/roles/listing [get]
func (a *AccessHandler) listRoles(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := a.accessUsecase.ListRoles(r.Context(), &usecase.GetRolesReq{Page: page, PageSize: pageSize})
	if err != nil {
		a.logger.Warnf("list roles: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRoleListViews(items))
}
