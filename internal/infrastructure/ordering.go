package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jupiter96/tradespeoplehub-sub000/internal/domain/ordering"

	"gorm.io/gorm"
)

// updateOrders grava o diff de ordem numa única transação. Um id que não existe mais
// desfaz a transação inteira.
func updateOrders(ctx context.Context, db *gorm.DB, table string, updates []ordering.Update) error {
	now := time.Now()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Table(table).
				Where("id = ?", u.ID).
				Updates(map[string]interface{}{
					"sort_order": u.Order,
					"updated_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%s %s: %w", table, u.ID, gorm.ErrRecordNotFound)
			}
		}
		return nil
	})
}

// siblingOrder é a ordem usada para montar os grupos de irmãos.
const siblingOrder = "sort_order ASC, name ASC"
