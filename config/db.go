package config

import (
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"locker-booking/models"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?%s", user, pass, net.JoinHostPort(host, port), dbName, q.Encode())
	return withFoundRows(dsn)
}

// withFoundRows makes UPDATE report matched rather than changed rows, which
// is what PostgreSQL and SQLite report too.
func withFoundRows(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN(db Database) (string, error) {
	raw := strings.TrimSpace(db.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(db.URL)
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return withFoundRows(raw)
	}

	port := db.Port
	if port == "" {
		port = "3306"
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = db.User
	cfg.Passwd = db.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(db.Host, port)
	cfg.DBName = db.Name
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func resolvePostgresDSN(db Database) string {
	if raw := strings.TrimSpace(db.URL); raw != "" {
		return raw
	}

	port := db.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, port, db.User, db.Password, db.Name, db.SSLMode,
	)
}

func dialector(db Database) (gorm.Dialector, error) {
	switch strings.ToLower(db.Driver) {
	case "", DriverMySQL:
		dsn, err := resolveMySQLDSN(db)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		// lib/pq registers itself as "postgres".
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: resolvePostgresDSN(db)}), nil
	case DriverSQLite:
		// modernc.org/sqlite registers the cgo-free "sqlite" driver.
		return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: db.Name}), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", db.Driver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the configured database, sizes its pool, migrates
// the schema and optionally seeds it.
func ConnectDatabase(cfg Database, log *slog.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		stdLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite && strings.Contains(cfg.Name, ":memory:") {
		// Every connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Seed {
		if err := Seed(db, log); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	return db, nil
}

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Locker{},
		&models.Order{},
		&models.Category{},
		&models.Product{},
		&models.OrderedProduct{},
	)
}

// Seed fills the category table on an empty database.
func Seed(db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("categories already seeded")
		return nil
	}

	categories := []models.Category{
		{Name: "Snacks"},
		{Name: "Drinks"},
		{Name: "Toiletries"},
		{Name: "Souvenirs"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Info("categories seeded", slog.Int("count", len(categories)))
	return nil
}

func stdLogger() *log.Logger {
	return log.New(os.Stdout, "\r\n", log.LstdFlags)
}
