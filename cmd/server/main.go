package main

import "leadflow/internal/app"

// @title           LeadFlow CRM API
// @version         1.0
// @description     Lead and deal tracking with per-user isolation: CRUD, lead-to-deal conversion and a pipeline dashboard.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app.Run()
}
