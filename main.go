package main

import (
	"log"
	"os"

	"valueScoutBot/models"
	"valueScoutBot/scheduler"
	"valueScoutBot/services"
	"valueScoutBot/services/alertService"
	"valueScoutBot/services/cacheService"
	"valueScoutBot/services/extService"
	"valueScoutBot/services/interactionService"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.TrackedBet{}, &models.ErrorLog{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		log.Fatalf("DISCORD_BOT_TOKEN not set in environment variables")
	}
	alertChannelID := os.Getenv("ALERT_CHANNEL_ID")
	if alertChannelID == "" {
		log.Fatalf("ALERT_CHANNEL_ID not set in environment variables")
	}

	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Error parsing REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	cfgs := models.LoadSportConfigs()
	oddsClient := extService.NewOddsAPIClient()
	statsClient := extService.NewStatsClient()
	cache := cacheService.New(db, rdb, oddsClient, oddsClient, statsClient, cfgs)
	engine := alertService.NewEngine(dg, db, rdb, alertChannelID, cfgs)
	cache.OnSnapshotChange(engine.HandleSnapshot)

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			services.HandleSlashCommand(s, i, db, cache)
		case discordgo.InteractionMessageComponent:
			interactionService.HandleComponentInteraction(s, i, db, engine)
		}
	})
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Scanning for value!")
		if err != nil {
			return
		}
	})

	err = dg.Open()
	if err != nil {
		log.Fatalf("Error opening Discord session: %v", err)
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		log.Fatalf("Error registering commands: %v", err)
	}

	scheduler.SetupCron(db, cache, cfgs)

	log.Println("Bot is running. Press CTRL+C to exit.")
	select {}
}
