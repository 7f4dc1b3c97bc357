package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// migrationsFS 内嵌的排班库建表脚本（employees / shift_types /
// assignments / time_off_requests）
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsTable 版本记录表名，与业务表区分开
const migrationsTable = "scheduler_schema_migrations"

// RunMigrations 启动时把排班库迁移到最新版本
// 幂等：已是最新版本时直接返回
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载排班库迁移脚本失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("执行排班库迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("排班库迁移处于 dirty 状态，需人工介入",
			zap.Uint("version", version),
			zap.String("table", migrationsTable),
		)
	} else {
		logger.Info("排班库迁移完成", zap.Uint("version", version))
	}

	return nil
}
