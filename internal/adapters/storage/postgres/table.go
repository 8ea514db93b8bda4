package postgres

import (
	"context"

	"gorm.io/gorm"
)

// table implementa crud.Store[E] sobre una fila gorm R con PK "id".
type table[E any, R any] struct {
	db      *gorm.DB
	toRow   func(E) R
	fromRow func(R) E
}

func (t table[E, R]) Create(ctx context.Context, e E) error {
	row := t.toRow(e)
	return translate(t.db.WithContext(ctx).Create(&row).Error, opWrite)
}

// Update pisa todas las columnas salvo id/created_at.
func (t table[E, R]) Update(ctx context.Context, e E) error {
	row := t.toRow(e)
	res := t.db.WithContext(ctx).Model(&row).Select("*").Omit("id", "created_at").Updates(&row)
	if res.Error != nil {
		return translate(res.Error, opWrite)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, opWrite)
	}
	return nil
}

func (t table[E, R]) Delete(ctx context.Context, id string) error {
	res := t.db.WithContext(ctx).Delete(new(R), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, opDelete)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, opDelete)
	}
	return nil
}

func (t table[E, R]) GetByID(ctx context.Context, id string) (E, error) {
	var row R
	if err := t.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		var zero E
		return zero, translate(err, opWrite)
	}
	return t.fromRow(row), nil
}

func (t table[E, R]) List(ctx context.Context) ([]E, error) {
	var rows []R
	if err := t.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return t.entities(rows), nil
}

func (t table[E, R]) entities(rows []R) []E {
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		out = append(out, t.fromRow(r))
	}
	return out
}
