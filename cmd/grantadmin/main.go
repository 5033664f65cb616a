package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	dbadapter "github.com/dench1k1ng/final-web-backend/internal/adapter/db"
	"github.com/dench1k1ng/final-web-backend/internal/config"
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

// grantadmin promotes an existing account to the admin role:
//
//	go run ./cmd/grantadmin user@example.com
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: grantadmin <email>")
		os.Exit(2)
	}
	email := os.Args[1]

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer db.Close()

	res, err := db.Exec(`UPDATE users SET role = ? WHERE email = ?`, domain.RoleAdmin, email)
	if err != nil {
		logger.Fatal("failed to update role", zap.Error(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		logger.Fatal("failed to read result", zap.Error(err))
	}
	if affected == 0 {
		logger.Fatal("no user with that email", zap.String("email", email))
	}

	logger.Info("granted admin role", zap.String("email", email))
}
