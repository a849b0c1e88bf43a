// @title Gamify API
// @description Progression, attendance, badge and kimchidex engine for the Baechu community app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/baechu-app/gamify/internal/api"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/internal/service"
	"github.com/baechu-app/gamify/pkg/cleanup"
	"github.com/baechu-app/gamify/pkg/config"
	jwtservice "github.com/baechu-app/gamify/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	progressionRepo := repository.NewProgressionRepo(&dbCfg)
	attendanceRepo := repository.NewAttendanceRepo(&dbCfg)
	badgesRepo := repository.NewBadgesRepo(&dbCfg)
	dexRepo := repository.NewDexRepo(&dbCfg)
	postStatsRepo := repository.NewPostStatsRepo(&dbCfg)

	locks := service.NewUserLocks()
	progressionService := service.NewProgressionService(progressionRepo)
	statsService := service.NewStatsService(progressionRepo, attendanceRepo, dexRepo, postStatsRepo)
	badgeService := service.NewBadgeService(badgesRepo, progressionService)
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		ProgressionService: progressionService,
		AttendanceService:  service.NewAttendanceService(attendanceRepo, progressionService, badgeService, statsService, locks),
		BadgeService:       badgeService,
		DexService:         service.NewDexService(dexRepo, badgeService, statsService, locks),
		ActivityService:    service.NewActivityService(postStatsRepo, progressionService, badgeService, statsService, locks),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
