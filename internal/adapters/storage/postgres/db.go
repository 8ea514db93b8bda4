package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"zoo-management/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultMaxOpenConns = 10

// Open abre un pool pgx (database/sql) y lo envuelve con gorm.
func Open(dsn string, maxOpen int, log logger.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen / 2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), Config(log))
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Config es la configuración gorm compartida (también la usan los tests
// sobre sqlite).
func Config(log logger.Logger) *gorm.Config {
	if log == nil {
		log = logger.Nop()
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{log: log.With(map[string]any{"component": "gorm"})}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// gormWriter manda las trazas de gorm (lentas o con error) al logger.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...), nil)
}

// Migrate crea o actualiza el esquema. El orden respeta las FKs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRow{},
		&professionRow{},
		&employeeRow{},
		&profileRow{},
		&speciesRow{},
		&animalRow{},
		&assignmentRow{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
