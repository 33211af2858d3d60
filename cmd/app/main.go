package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pickuphub/cmd"
	httpadapter "pickuphub/internal/adapters/in/http"
	"pickuphub/internal/adapters/out/postgres/orderrepo"
	"pickuphub/internal/adapters/out/postgres/positionrepo"
	"pickuphub/internal/adapters/out/postgres/staffrepo"
	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/domain/model/staff"
	"pickuphub/internal/jobs"
	"pickuphub/internal/pkg/errs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	seedAdmin(&app, configs, logger)

	jobManager := jobs.NewJobManager(app.CreateCountOrdersByDayQueryHandler(), app.Clock(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.VolumeDTO{},
		&orderrepo.EventDTO{},
		&positionrepo.PositionDTO{},
		&staffrepo.StaffDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the variables are unset or the account
// already exists.
func seedAdmin(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		return
	}

	command, err := commands.NewRegisterStaffCommand("Administrator", configs.AdminEmail, configs.AdminPassword, staff.RoleAdmin)
	if err != nil {
		log.Fatalf("Invalid admin credentials: %v", err)
	}

	handler := app.CreateRegisterStaffCommandHandler()
	if _, err = handler.Handle(context.Background(), command); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			logger.Info("Admin account already exists", "email", configs.AdminEmail)
			return
		}
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	logger.Info("Admin account created", "email", configs.AdminEmail)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterOrderCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateConfirmPickupCommandHandler(),
		app.CreateAssignPositionCommandHandler(),
		app.CreateAddPositionCommandHandler(),
		app.CreateAuthenticateStaffCommandHandler(),
		app.CreateSearchOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetOrderByCodeQueryHandler(),
		app.CreateFindOrdersByPhoneQueryHandler(),
		app.CreateCountOrdersByStatusQueryHandler(),
		app.CreateListFreePositionsQueryHandler(),
		app.CreateSuggestPositionQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
