package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechu-app/gamify/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	progressionService service.ProgressionServiceI
	attendanceService  service.AttendanceServiceI
	badgeService       service.BadgeServiceI
	dexService         service.DexServiceI
	activityService    service.ActivityServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	ProgressionService service.ProgressionServiceI
	AttendanceService  service.AttendanceServiceI
	BadgeService       service.BadgeServiceI
	DexService         service.DexServiceI
	ActivityService    service.ActivityServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		progressionService: servicesOptions.ProgressionService,
		attendanceService:  servicesOptions.AttendanceService,
		badgeService:       servicesOptions.BadgeService,
		dexService:         servicesOptions.DexService,
		activityService:    servicesOptions.ActivityService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Post("/attendance/check-in", s.CheckIn)
			r.Get("/attendance", s.GetMonthAttendance)
			r.Get("/attendance/can-check-in", s.CanCheckIn)
			r.Post("/attendance/reconcile", s.ReconcileStreaks)
			r.Post("/events/post-created", s.PostCreated)
			r.Post("/events/comment-created", s.CommentCreated)
			r.Post("/xp/grant", s.GrantXp)
			r.Get("/progress", s.GetProgress)
			r.Get("/badges", s.GetBadges)
			r.Get("/dex", s.GetDex)
			r.Get("/dex/items/{itemID}", s.GetDexItem)
			r.Put("/dex/items/{itemID}/status", s.SetDexStatus)
			r.Put("/dex/items/{itemID}/rating", s.SetDexRating)
			r.Put("/dex/items/{itemID}/memo", s.SetDexMemo)
		})
	})
}

func (s *Server) Run(address string) error {
	s.mountRoutes()
	return http.ListenAndServe(address, s.mx)
}
