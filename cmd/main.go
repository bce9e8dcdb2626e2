package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/rotafacil/api-frota/internal/auth"
	"github.com/rotafacil/api-frota/internal/automacao"
	"github.com/rotafacil/api-frota/internal/despesa"
	"github.com/rotafacil/api-frota/internal/fechamento"
	"github.com/rotafacil/api-frota/internal/importacao"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/receita"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/sobra"
	"github.com/rotafacil/api-frota/internal/solicitacao"
	"github.com/rotafacil/api-frota/internal/statusdiario"
	"github.com/rotafacil/api-frota/internal/utils/db"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conexao, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := motorista.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de motoristas:", err)
	}
	if err := veiculo.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de veículos:", err)
	}
	if err := rota.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de rotas:", err)
	}
	if err := despesa.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de despesas:", err)
	}
	if err := statusdiario.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de status diário:", err)
	}
	if err := fechamento.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de fechamentos:", err)
	}
	if err := solicitacao.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de solicitações:", err)
	}
	if err := sobra.Migrate(conexao); err != nil {
		log.Fatal("Erro no AutoMigrate de sobras:", err)
	}

	// Repositórios
	veiculoRepo := veiculo.NewRepository(conexao)
	motoristaRepo := motorista.NewRepository()
	rotaRepo := rota.NewRepository(conexao)
	despesaRepo := despesa.NewRepository(conexao)
	statusRepo := statusdiario.NewRepository(conexao)
	fechamentoRepo := fechamento.NewRepository(conexao)
	solicitacaoRepo := solicitacao.NewRepository(conexao)
	sobraRepo := sobra.NewRepository(conexao)

	// Handlers
	automator := automacao.New(statusRepo)
	veiculoHandler := veiculo.NewHandler(veiculoRepo)
	motoristaHandler := motorista.NewHandler(conexao)
	rotaHandler := rota.NewHandler(rotaRepo, automator)
	despesaHandler := despesa.NewHandler(despesaRepo, rotaRepo)
	statusHandler := statusdiario.NewHandler(statusRepo, rotaRepo, veiculoRepo)
	painelHandler := receita.NewHandler(conexao, rotaRepo, veiculoRepo, despesaRepo)
	importacaoHandler := importacao.NewHandler(conexao,
		&importacao.Matcher{Rotas: rotaRepo, Despesas: despesaRepo},
		rotaRepo, veiculoRepo, motoristaRepo)
	fechamentoHandler := fechamento.NewHandler(conexao, fechamentoRepo, rotaRepo, veiculoRepo, motoristaRepo)
	solicitacaoHandler := solicitacao.NewHandler(solicitacaoRepo)
	sobraHandler := sobra.NewHandler(sobraRepo)

	// Router
	r := mux.NewRouter()

	// Pública
	r.HandleFunc("/login", motoristaHandler.Login).Methods("POST")

	// Autenticada
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Área restrita a administradores
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	// Motoristas
	api.HandleFunc("/motoristas", motoristaHandler.ListarMotoristas).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/motoristas/{id}", motoristaHandler.AtualizarMotorista).Methods("PUT")
	admin.HandleFunc("/motoristas", motoristaHandler.CriarMotorista).Methods("POST")
	admin.HandleFunc("/motoristas/{id}", motoristaHandler.DeletarMotorista).Methods("DELETE")

	// Veículos
	api.HandleFunc("/veiculos", veiculoHandler.ListarVeiculos).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/veiculos", veiculoHandler.CriarVeiculo).Methods("POST")
	admin.HandleFunc("/veiculos/frota-oficial", veiculoHandler.CarregarFrotaOficial).Methods("POST")
	admin.HandleFunc("/veiculos/{id}/tarifas", veiculoHandler.AtualizarTarifas).Methods("PATCH")

	// Rotas
	api.HandleFunc("/rotas", rotaHandler.CriarRota).Methods("POST")
	api.HandleFunc("/rotas", rotaHandler.ListarRotas).Methods("GET")
	api.HandleFunc("/rotas/{id}", rotaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/rotas/{id}", rotaHandler.AtualizarRota).Methods("PUT")
	api.HandleFunc("/rotas/{id}/status", rotaHandler.AtualizarStatus).Methods("PATCH")

	// Despesas
	api.HandleFunc("/despesas", despesaHandler.CriarDespesa).Methods("POST")
	api.HandleFunc("/rotas/{id}/despesas", despesaHandler.ListarPorRota).Methods("GET")
	admin.HandleFunc("/despesas", despesaHandler.ListarDespesas).Methods("GET")
	admin.HandleFunc("/despesas/pernoites-pendentes", despesaHandler.PernoitesPendentes).Methods("GET")

	// Sobras de carga
	api.HandleFunc("/rotas/{id}/sobras", sobraHandler.RegistrarSobras).Methods("POST")
	api.HandleFunc("/rotas/{id}/sobras", sobraHandler.ListarPorRota).Methods("GET")

	// Status diário da frota
	api.HandleFunc("/frota/status", statusHandler.ListarPorMes).Methods("GET")
	api.HandleFunc("/frota/calendario", statusHandler.Calendario).Methods("GET")
	admin.HandleFunc("/frota/status", statusHandler.UpsertManual).Methods("PUT")

	// Painel
	admin.HandleFunc("/painel/resumo", painelHandler.Resumo).Methods("GET")

	// Importação e fechamento
	admin.HandleFunc("/importacoes/rotas", importacaoHandler.ImportarRotas).Methods("POST")
	admin.HandleFunc("/fechamentos/previa", fechamentoHandler.Previa).Methods("POST")
	admin.HandleFunc("/fechamentos", fechamentoHandler.CriarFechamento).Methods("POST")
	admin.HandleFunc("/fechamentos", fechamentoHandler.ListarFechamentos).Methods("GET")
	admin.HandleFunc("/fechamentos/{id}", fechamentoHandler.BuscarPorID).Methods("GET")

	// Solicitações de pagamento
	api.HandleFunc("/solicitacoes", solicitacaoHandler.CriarSolicitacao).Methods("POST")
	api.HandleFunc("/solicitacoes", solicitacaoHandler.ListarSolicitacoes).Methods("GET")
	admin.HandleFunc("/solicitacoes/{id}/status", solicitacaoHandler.AtualizarStatus).Methods("PATCH")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	fmt.Println("Servidor rodando em", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
