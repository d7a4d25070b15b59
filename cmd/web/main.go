// @title           GigBook API
// @version         1.0
// @description     REST API маркетплейса букинга: площадки публикуют гиги,
// @description     артисты откликаются, площадки нанимают и подтверждают завершение.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "gigbook_backend/internal/app"

func main() {
	app.Run()
}
