package main

import (
	"context"
	"log"
	"time"

	"github.com/vfg2006/ig-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ig-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/ig-dashboard-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	if err := migration.Apply(ctx, conn); err != nil {
		log.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	log.Printf("Migrações concluídas em %v!", time.Since(startTime))
}
