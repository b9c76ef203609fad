package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/recadosapp/recados/config"
	"github.com/recadosapp/recados/handler"
	"github.com/recadosapp/recados/model"
	"github.com/recadosapp/recados/service"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var version = "dev"

func openDB(conf *config.Config) (*gorm.DB, error) {
	gconf := &gorm.Config{
		// let duplicate-key violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
	if conf.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(conf.Database), gconf)
	}
	return gorm.Open(mysql.Open(conf.Database), gconf)
}

func main() {
	var confPath string
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.StringVar(&confPath, "conf", "./config.yaml", "Path to the configuration file")
	flag.Parse()

	if showVersion {
		log.Printf("Version: %s", version)
		return
	}

	conf, err := config.Load(confPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if conf.LogFile != "" {
		logFd, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer logFd.Close()
		log.SetOutput(logFd)
	}

	db, err := openDB(conf)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := model.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	pessoas := service.NewPessoaService(db)
	recados := service.NewRecadoService(db, pessoas)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.AllowOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.PUT, echo.OPTIONS},
		AllowCredentials: true,
	}))

	handler.Register(e, pessoas, recados)

	e.Logger.Fatal(e.Start(conf.Listen))
}
