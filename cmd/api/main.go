// Package main Prospera API
//
// Prospera is the backend of a financial literacy app: user profiles with
// gamified progress, an income and expense tracker, mini-game scores with
// coin rewards and leaderboards, and a catalogue of learning content.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"context"

	_ "github.com/saradorri/prospera/docs"
	"github.com/saradorri/prospera/internal/app"
)

// @title Prospera API
// @version 1.0.0
// @description Financial literacy backend: users, progress, transactions, games and learning content.

// @contact.name API Support
// @contact.email support@prospera.app

// @license.name MIT

// @host localhost:8080
// @BasePath /
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
