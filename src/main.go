package main

import (
	_ "Backend-Sentinel/docs"
	"Backend-Sentinel/src/controllers"
	"Backend-Sentinel/src/database"
	"Backend-Sentinel/src/jobs"
	"Backend-Sentinel/src/routes"
	"Backend-Sentinel/src/services/notify"
	"Backend-Sentinel/src/services/risk"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Sentinel API
// @version 1.0
// @description Dropout risk dashboard backend
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq เป็น optional ถ้าไม่มีจะ fallback ไป inline
	database.InitRedis()
	database.InitAsynq()

	riskClient := risk.NewClient()

	// SMTP sender ถ้า env ไม่ครบจะส่ง email ไม่ได้ แต่ API อื่นยังทำงาน
	var sender notify.MailSender
	if smtp, err := notify.NewSMTPSenderFromEnv(); err != nil {
		log.Println("⚠️ SMTP not configured:", err)
	} else {
		sender = smtp
		controllers.SetMailSender(sender)
	}

	if database.AsynqClient != nil {
		jobs.StartWorker(sender, riskClient)
		jobs.ScheduleNightlyRetrain()
	}

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
