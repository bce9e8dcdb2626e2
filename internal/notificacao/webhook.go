// Package notificacao envia alertas operacionais para um webhook externo
// (canal da equipe). Falha de entrega nunca interrompe a operação que
// originou o alerta: o erro é apenas registrado.
package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

type Alerta struct {
	Titulo   string `json:"titulo"`
	Mensagem string `json:"mensagem"`
}

var cliente = &http.Client{Timeout: 10 * time.Second}

// EnviarAlerta publica o alerta no webhook configurado em
// WEBHOOK_ALERTA_URL. Sem URL configurada a chamada é um no-op.
func EnviarAlerta(titulo, mensagem string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	corpo, err := json.Marshal(Alerta{Titulo: titulo, Mensagem: mensagem})
	if err != nil {
		log.Printf("notificacao: erro ao montar alerta: %v", err)
		return
	}

	resp, err := cliente.Post(url, "application/json", bytes.NewReader(corpo))
	if err != nil {
		log.Printf("notificacao: erro ao enviar alerta: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("notificacao: webhook respondeu %d", resp.StatusCode)
	}
}
