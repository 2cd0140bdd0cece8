package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "SentinelDB"

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	// Student pre-registrations and claimed profiles share this collection:
	// _id is an arbitrary admin key before reconciliation and the session
	// uid afterwards. Counselors follow the same keying rule in their own
	// collection.
	StudentCollection   *mongo.Collection
	CounselorCollection *mongo.Collection
	UserCollection      *mongo.Collection
	ForumCollection     *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		StudentCollection = GetCollection(DBName, "students")
		CounselorCollection = GetCollection(DBName, "counselors")
		UserCollection = GetCollection(DBName, "users")
		ForumCollection = GetCollection(DBName, "forum")

		ensureIndexes()
	})

	return connectErr
}

// ensureIndexes สร้าง index ที่จำเป็น
// users.email is unique so a duplicate credential insert fails at the store
// and the conflict can be surfaced verbatim on the registration form.
func ensureIndexes() {
	_, err := UserCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create unique index on users.email:", err)
	}

	_, err = ForumCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		log.Println("⚠️ Failed to create index on forum.timestamp:", err)
	}
}

// Client คืน mongo client สำหรับเปิด session/transaction
func Client() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
