package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"proforma/pkg/api/assumptions"
	"proforma/pkg/api/config"
	"proforma/pkg/api/insights"
	"proforma/pkg/api/project"
	"proforma/pkg/api/statements"
	"proforma/pkg/api/templates"
	"proforma/pkg/core/agent"
	"proforma/pkg/core/insight"
	"proforma/pkg/core/prompt"
	"proforma/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Prompt overrides (optional; built-in defaults are always present)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt overrides: %v\n", err)
	}

	// Agent manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	if agentCfg.ActiveProvider == "" {
		agentCfg.ActiveProvider = "gemini"
	}
	agentMgr := agent.NewManager(agentCfg)

	// Storage: Postgres when DATABASE_URL is set, in-memory otherwise
	ctx := context.Background()
	var db store.Store
	var reports *store.ReportRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[FATAL] Database init failed: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			fmt.Printf("[FATAL] Schema migration failed: %v\n", err)
			os.Exit(1)
		}
		pg, err := store.NewPG()
		if err != nil {
			fmt.Printf("[FATAL] Store init failed: %v\n", err)
			os.Exit(1)
		}
		db = pg
		reports = store.NewReportRepo()
		fmt.Println("[STORE] Using Postgres")
	} else {
		db = store.NewMemory()
		fmt.Println("[STORE] DATABASE_URL not set, using in-memory store")
	}

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Project endpoints
	projectHandler := project.NewHandler(db)
	http.HandleFunc("/api/projects", projectHandler.HandleProjects)
	http.HandleFunc("/api/projects/detail", projectHandler.HandleProject)

	// Assumption collection endpoints
	assumptionHandler := assumptions.NewHandler(db)
	http.HandleFunc("/api/revenue", assumptionHandler.HandleRevenue)
	http.HandleFunc("/api/cogs", assumptionHandler.HandleCogs)
	http.HandleFunc("/api/salaries", assumptionHandler.HandleSalaries)
	http.HandleFunc("/api/opex", assumptionHandler.HandleOpex)
	http.HandleFunc("/api/fixed-expenses", assumptionHandler.HandleFixedExpenses)
	http.HandleFunc("/api/capex", assumptionHandler.HandleCapex)
	http.HandleFunc("/api/funding", assumptionHandler.HandleFunding)

	// Statement endpoints
	statementHandler := statements.NewHandler(db)
	http.HandleFunc("/api/statements/income", statementHandler.HandleIncome)
	http.HandleFunc("/api/statements/cashflow", statementHandler.HandleCashFlow)
	http.HandleFunc("/api/statements/kpis", statementHandler.HandleKPIs)

	// Template endpoints
	templateHandler := templates.NewHandler(db)
	http.HandleFunc("/api/templates", templateHandler.HandleList)
	http.HandleFunc("/api/templates/apply", templateHandler.HandleApply)

	// Insight endpoints
	insightHandler := insights.NewHandler(db, insight.NewEngine(agentMgr), reports)
	http.HandleFunc("/api/insights/analyze", insightHandler.HandleAnalyze)
	http.HandleFunc("/api/insights/cost-optimization", insightHandler.HandleCostOptimization)
	http.HandleFunc("/api/insights/forecast", insightHandler.HandleForecast)
	http.HandleFunc("/api/insights/report", insightHandler.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET    /api/config")
	fmt.Println("  - POST   /api/config/switch")
	fmt.Println("  - GET/POST /api/projects")
	fmt.Println("  - GET/PUT/DELETE /api/projects/detail")
	fmt.Println("  - CRUD   /api/{revenue,cogs,salaries,opex,fixed-expenses,capex,funding}")
	fmt.Println("  - GET    /api/statements/{income,cashflow,kpis}")
	fmt.Println("  - GET    /api/templates")
	fmt.Println("  - POST   /api/templates/apply")
	fmt.Println("  - POST   /api/insights/{analyze,cost-optimization,forecast,report}")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server error: %v\n", err)
		os.Exit(1)
	}
}
