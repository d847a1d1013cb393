package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccessUseCase ведёт пользователей, права и роли через тот же движок
// сверки, что и каталог. Аутентификация остаётся за Identity.
type AccessUseCase struct {
	userRepo       UserRepository
	permissionRepo PermissionRepository
	roleRepo       RoleRepository
	dbPool         transaction.Transactional
	listings       ListingCache
	users          *Reconciler[domain.User]
	permissions    *Reconciler[domain.Permission]
	roles          *Reconciler[domain.Role]
	logger         logger.Logger
}

func NewAccessUC(
	userRepo UserRepository,
	permissionRepo PermissionRepository,
	roleRepo RoleRepository,
	dbPool transaction.Transactional,
	listings ListingCache,
	logger logger.Logger,
) *AccessUseCase {
	return &AccessUseCase{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		dbPool:         dbPool,
		listings:       listings,
		users: NewReconciler[domain.User](NewUserTraits(), ReconcileErrors{
			NotFound:      e.ErrUserNotFound,
			AlreadyExists: e.ErrUserExists,
		}),
		permissions: NewReconciler[domain.Permission](NewPermissionTraits(), ReconcileErrors{
			NotFound:      e.ErrPermissionNotFound,
			AlreadyExists: e.ErrPermissionExists,
		}),
		roles: NewReconciler[domain.Role](NewRoleTraits(), ReconcileErrors{
			NotFound:      e.ErrRoleNotFound,
			AlreadyExists: e.ErrRoleExists,
		}),
		logger: logger,
	}
}

// USERS

func (a *AccessUseCase) AddUsers(ctx context.Context, req *AddUsersReq) error {
	const op = "AccessUseCase.AddUsers"

	stamped, err := a.users.Add(ctx, req.Users)
	if err != nil {
		return e.Wrap(op, err)
	}

	ids := make([]uuid.UUID, 0, len(stamped))
	emails := make([]string, 0, len(stamped))
	for _, user := range stamped {
		ids = append(ids, user.ID)
		emails = append(emails, user.Email)
	}

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		idTaken, emailTaken, err := a.userRepo.Exists(ctx, ids, emails)
		if err != nil {
			return err
		}
		if err := a.users.Exists(idTaken, emailTaken); err != nil {
			return err
		}

		_, err = a.userRepo.AddRange(ctx, stamped)
		return err
	}))
}

func (a *AccessUseCase) UpdateUsers(ctx context.Context, req *UpdateUsersReq) error {
	const op = "AccessUseCase.UpdateUsers"

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.userRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		changed, err := a.users.Update(ctx, req.IDs, current, req.Users)
		if err != nil {
			return err
		}

		_, err = a.userRepo.UpdateRange(ctx, changed)
		return err
	}))
}

func (a *AccessUseCase) DeleteUsers(ctx context.Context, req *DeleteUsersReq) error {
	const op = "AccessUseCase.DeleteUsers"

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.userRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		stamped, err := a.users.Delete(ctx, req.IDs, current)
		if err != nil {
			return err
		}

		_, err = a.userRepo.RemoveRange(ctx, stamped)
		return err
	}))
}

func (a *AccessUseCase) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	const op = "AccessUseCase.GetUsersByIDs"

	users, err := a.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	users, err = a.users.GetByIDs(ids, users)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return users, nil
}

// PERMISSIONS

func (a *AccessUseCase) AddPermissions(ctx context.Context, req *AddPermissionsReq) error {
	const op = "AccessUseCase.AddPermissions"

	stamped, err := a.permissions.Add(ctx, req.Permissions)
	if err != nil {
		return e.Wrap(op, err)
	}

	ids := make([]uuid.UUID, 0, len(stamped))
	names := make([]string, 0, len(stamped))
	for _, permission := range stamped {
		ids = append(ids, permission.ID)
		names = append(names, permission.Name)
	}

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		idTaken, nameTaken, err := a.permissionRepo.Exists(ctx, ids, names)
		if err != nil {
			return err
		}
		if err := a.permissions.Exists(idTaken, nameTaken); err != nil {
			return err
		}

		_, err = a.permissionRepo.AddRange(ctx, stamped)
		return err
	}))
}

func (a *AccessUseCase) UpdatePermissions(ctx context.Context, req *UpdatePermissionsReq) error {
	const op = "AccessUseCase.UpdatePermissions"

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.permissionRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		changed, err := a.permissions.Update(ctx, req.IDs, current, req.Permissions)
		if err != nil {
			return err
		}

		_, err = a.permissionRepo.UpdateRange(ctx, changed)
		return err
	}))
}

func (a *AccessUseCase) DeletePermissions(ctx context.Context, req *DeletePermissionsReq) error {
	const op = "AccessUseCase.DeletePermissions"

	return e.WrapIf(op, a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.permissionRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		stamped, err := a.permissions.Delete(ctx, req.IDs, current)
		if err != nil {
			return err
		}

		_, err = a.permissionRepo.RemoveRange(ctx, stamped)
		return err
	}))
}

// ROLES

func (a *AccessUseCase) AddRoles(ctx context.Context, req *AddRolesReq) error {
	const op = "AccessUseCase.AddRoles"

	stamped, err := a.roles.Add(ctx, req.Roles)
	if err != nil {
		return e.Wrap(op, err)
	}

	ids := make([]uuid.UUID, 0, len(stamped))
	names := make([]string, 0, len(stamped))
	for _, role := range stamped {
		ids = append(ids, role.ID)
		names = append(names, role.Name)
	}

	err = a.withTx(ctx, func(ctx context.Context) error {
		idTaken, nameTaken, err := a.roleRepo.Exists(ctx, ids, names)
		if err != nil {
			return err
		}
		if err := a.roles.Exists(idTaken, nameTaken); err != nil {
			return err
		}

		_, err = a.roleRepo.AddRange(ctx, stamped)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.patchRoleListing(ctx, stamped)
	return nil
}

func (a *AccessUseCase) UpdateRoles(ctx context.Context, req *UpdateRolesReq) error {
	const op = "AccessUseCase.UpdateRoles"

	var changed []domain.Role
	err := a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.roleRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		changed, err = a.roles.Update(ctx, req.IDs, current, req.Roles)
		if err != nil {
			return err
		}

		_, err = a.roleRepo.UpdateRange(ctx, changed)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.patchRoleListing(ctx, changed)
	return nil
}

func (a *AccessUseCase) DeleteRoles(ctx context.Context, req *DeleteRolesReq) error {
	const op = "AccessUseCase.DeleteRoles"

	err := a.withTx(ctx, func(ctx context.Context) error {
		current, err := a.roleRepo.GetByIDs(ctx, req.IDs)
		if err != nil {
			return err
		}

		stamped, err := a.roles.Delete(ctx, req.IDs, current)
		if err != nil {
			return err
		}

		_, err = a.roleRepo.RemoveRange(ctx, stamped)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if cacheErr := a.listings.DeleteRoleItems(ctx, req.IDs); cacheErr != nil {
		a.logger.Warnf("Failed to patch role listing after delete: %v", e.Wrap(op, cacheErr))
	}

	return nil
}

// ListRoles возвращает страничный листинг ролей; промах кэша
// заполняется из хранилища.
func (a *AccessUseCase) ListRoles(ctx context.Context, req *GetRolesReq) ([]RoleListItem, error) {
	const op = "AccessUseCase.ListRoles"

	items, hit, err := a.listings.GetRolePage(ctx, req.Page, req.PageSize)
	if err != nil {
		a.logger.Warnf("Role listing cache read failed: %v", e.Wrap(op, err))
	}
	if hit {
		return items, nil
	}

	roles, err := a.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	roles, err = a.roles.GetAll(roles)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items = make([]RoleListItem, 0, req.PageSize)
	for _, role := range pageWindow(roles, req.Page, req.PageSize) {
		items = append(items, RoleListItem{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		})
	}

	if err := a.listings.SetRolePage(ctx, req.Page, req.PageSize, items); err != nil {
		a.logger.Warnf("Role listing cache write failed: %v", e.Wrap(op, err))
	}

	return items, nil
}

func (a *AccessUseCase) patchRoleListing(ctx context.Context, changed []domain.Role) {
	const op = "AccessUseCase.patchRoleListing"

	for _, role := range changed {
		item := RoleListItem{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		}
		if err := a.listings.UpsertRoleItem(ctx, item); err != nil {
			a.logger.Warnf("Failed to patch role listing: %v", e.Wrap(op, err))
		}
	}
}

// withTx выполняет fn внутри транзакции, кладя её объект в контекст
// для репозиториев.
func (a *AccessUseCase) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
