package main

// @title Weather Dashboard API
// @version 1.0
// @description Current conditions, forecasts, chart series and popular cities for the weather dashboard.
// @description Forecasts come from Open-Meteo and place names from OpenStreetMap Nominatim.

// @host localhost:8080
// @BasePath /
