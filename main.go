package main

import "github.com/killallgit/scout-api/cmd"

// @title           Scout API
// @version         1.0
// @description     AI video analysis and training plan generation for athletes.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/scout-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
// @description                 Supabase anon or user JWT forwarded by the client
func main() {
	cmd.Execute()
}
