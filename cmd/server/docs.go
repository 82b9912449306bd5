package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Alpha-Dash API
// @version         0.1.0
// @description     Parent order tracking against a VWAP benchmark: projects, child orders, performance, calendar and market data.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
