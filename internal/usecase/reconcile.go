package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/google/uuid"
)

// Traits — минимальный набор операций над агрегатом, которого достаточно
// движку сверки. Одна реализация на тип агрегата.
type Traits[T any] interface {
	// ID возвращает идентификатор агрегата.
	ID(item T) uuid.UUID
	// Equal сравнивает текущее и предлагаемое состояние по всем полям:
	// строки — через ключ нормализации, остальные поля — точно.
	Equal(current, proposed T) bool
	// Created возвращает таймстемп создания агрегата.
	Created(item T) time.Time
	// StampCreated возвращает копию с новым таймстемпом создания
	// и очищенными метками обновления и удаления.
	StampCreated(item T, at time.Time) T
	// StampRevised возвращает копию с сохранённым таймстемпом создания
	// и свежей меткой обновления.
	StampRevised(item T, createdAt time.Time, updatedAt time.Time) T
	// StampDeleted возвращает копию с меткой мягкого удаления.
	// Для продукта метка каскадно проставляется вложенным объектам.
	StampDeleted(item T, at time.Time) T
}

// ReconcileErrors — типизированные ошибки конкретного агрегата.
type ReconcileErrors struct {
	NotFound      error
	AlreadyExists error
}

// Reconciler проверяет входные данные мутаций, вычисляет фактическую
// дельту между текущим и предлагаемым состоянием и проставляет
// аудит-таймстемпы. Каждый вызов не имеет состояния.
type Reconciler[T any] struct {
	traits Traits[T]
	errs   ReconcileErrors
	now    func() time.Time
}

func NewReconciler[T any](traits Traits[T], errs ReconcileErrors) *Reconciler[T] {
	return &Reconciler[T]{
		traits: traits,
		errs:   errs,
		now:    time.Now,
	}
}

// Add проставляет таймстемп создания на каждый элемент и очищает метки
// обновления и удаления. Дельта на добавлении не считается.
func (r *Reconciler[T]) Add(ctx context.Context, items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, r.errs.NotFound
	}

	now := r.now()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, r.traits.StampCreated(item, now))
	}

	return out, nil
}

// Update возвращает те предлагаемые агрегаты, которые действительно
// отличаются от текущих. У каждого выжившего таймстемп создания берётся
// из текущего состояния, метка обновления — свежая. Пустая дельта —
// ошибка: обновлять идентичными данными нельзя.
func (r *Reconciler[T]) Update(ctx context.Context, ids []uuid.UUID, current, proposed []T) ([]T, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}

	currentByID := r.indexByIDs(ids, current)
	proposedByID := r.indexByIDs(ids, proposed)
	if len(currentByID) == 0 {
		return nil, r.errs.NotFound
	}

	changed, err := r.diff(ctx, ids, currentByID, proposedByID)
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return nil, r.errs.AlreadyExists
	}

	return changed, nil
}

// Delete проставляет метку мягкого удаления на каждый подходящий элемент.
// Удаление строк из хранилища — обязанность фасада репозитория.
func (r *Reconciler[T]) Delete(ctx context.Context, ids []uuid.UUID, items []T) ([]T, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}

	matched := r.filterByIDs(ids, items)
	if len(matched) == 0 {
		return nil, r.errs.NotFound
	}

	now := r.now()
	out := make([]T, 0, len(matched))
	for _, item := range matched {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, r.traits.StampDeleted(item, now))
	}

	return out, nil
}

// GetByIDs проверяет существование запрошенных агрегатов и возвращает их
// без изменений.
func (r *Reconciler[T]) GetByIDs(ids []uuid.UUID, items []T) ([]T, error) {
	if err := validateIDs(ids); err != nil {
		return nil, err
	}

	matched := r.filterByIDs(ids, items)
	if len(matched) == 0 {
		return nil, r.errs.NotFound
	}

	return matched, nil
}

// GetAll проверяет, что коллекция непуста, и возвращает её без изменений.
func (r *Reconciler[T]) GetAll(items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, r.errs.NotFound
	}

	return items, nil
}

// Exists переводит заранее вычисленные факты о коллизиях в типизированную
// ошибку. Это не булев запрос: флаги считает вызывающая сторона по
// данным хранилища.
func (r *Reconciler[T]) Exists(idTaken, nameTaken bool) error {
	if idTaken || nameTaken {
		return r.errs.AlreadyExists
	}

	return nil
}

// diff обходит запрошенные идентификаторы в их исходном порядке, поэтому
// порядок результата стабилен в рамках одного вызова.
func (r *Reconciler[T]) diff(ctx context.Context, ids []uuid.UUID, currentByID, proposedByID map[uuid.UUID]T) ([]T, error) {
	now := r.now()

	var changed []T
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current, ok := currentByID[id]
		if !ok {
			continue
		}
		proposed, ok := proposedByID[id]
		if !ok {
			continue
		}

		if r.traits.Equal(current, proposed) {
			continue
		}

		changed = append(changed, r.traits.StampRevised(proposed, r.traits.Created(current), now))
	}

	return changed, nil
}

func (r *Reconciler[T]) indexByIDs(ids []uuid.UUID, items []T) map[uuid.UUID]T {
	requested := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	byID := make(map[uuid.UUID]T, len(items))
	for _, item := range items {
		id := r.traits.ID(item)
		if _, ok := requested[id]; ok {
			byID[id] = item
		}
	}

	return byID
}

func (r *Reconciler[T]) filterByIDs(ids []uuid.UUID, items []T) []T {
	requested := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	matched := make([]T, 0, len(ids))
	for _, item := range items {
		if _, ok := requested[r.traits.ID(item)]; ok {
			matched = append(matched, item)
		}
	}

	return matched
}

// validateIDs отклоняет пустой набор идентификаторов и нулевой uuid
// до любых других проверок.
func validateIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return e.ErrInvalidIDs
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return e.ErrInvalidIDs
		}
	}

	return nil
}
