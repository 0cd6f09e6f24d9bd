// @title        La Cave API
// @version      1.0.0
// @description  La Cave 餐廳後端 API 文件
// @host         localhost:5000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
