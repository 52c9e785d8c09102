package main

import (
	"log"

	"github.com/alligatorO15/expense-manager/internal/api"
	"github.com/alligatorO15/expense-manager/internal/config"
	"github.com/alligatorO15/expense-manager/internal/database"
	"github.com/alligatorO15/expense-manager/internal/repository"
	"github.com/alligatorO15/expense-manager/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// загрузка .env файла
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	// загрузка конфигурации
	cfg := config.Load()

	// инициализация базы данных
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	// запуск миграций
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	// инициализация репозиториев и сервисов
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// инициализация и запуск API сервера
	server := api.NewServer(cfg, services)

	log.Printf("Запуск сервера Expense Manager на порту %s", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
