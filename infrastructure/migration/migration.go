package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/infrastructure/database/postgres"
)

type step struct {
	name string
	sql  string
}

// steps são idempotentes e executados em ordem a cada subida
var steps = []step{
	{
		name: "create purchase_orders",
		sql: `CREATE TABLE IF NOT EXISTS purchase_orders (
	id               VARCHAR(21)  PRIMARY KEY,
	po_number        VARCHAR(64)  NOT NULL,
	customer_number  VARCHAR(32)  NOT NULL DEFAULT '',
	country          VARCHAR(2)   NOT NULL,
	state            VARCHAR(16)  NOT NULL DEFAULT 'OPEN',
	status_code      VARCHAR(64)  NOT NULL DEFAULT '',
	order_numbers    TEXT[]       NOT NULL DEFAULT '{}',
	tracking_numbers TEXT[]       NOT NULL DEFAULT '{}',
	item_count       INTEGER      NOT NULL DEFAULT 0,
	submitted_at     TIMESTAMPTZ  NOT NULL,
	last_checked_at  TIMESTAMPTZ,
	created_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)`,
	},
	{
		name: "unique po_number",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS purchase_orders_po_number_idx ON purchase_orders (po_number)`,
	},
	{
		name: "open orders index",
		sql:  `CREATE INDEX IF NOT EXISTS purchase_orders_state_submitted_idx ON purchase_orders (state, submitted_at)`,
	},
}

// Transactor é satisfeito por *postgres.Connection
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Migrate aplica o schema do diário de pedidos numa única transação
func Migrate(ctx context.Context, db Transactor) error {
	err := db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return apply(ctx, tx)
	})
	if err != nil {
		return err
	}

	logrus.WithField("steps", len(steps)).Info("Migrações aplicadas com sucesso")
	return nil
}

func apply(ctx context.Context, db postgres.Queryer) error {
	for i, s := range steps {
		logrus.WithFields(logrus.Fields{
			"step":  i + 1,
			"total": len(steps),
			"name":  s.name,
		}).Debug("Aplicando migração")

		if _, err := db.ExecContext(ctx, s.sql); err != nil {
			return fmt.Errorf("erro ao aplicar migração %q: %w", s.name, err)
		}
	}
	return nil
}
