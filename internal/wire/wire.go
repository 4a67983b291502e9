package wire

import (
	"SocialPulse/internal/api"
	"SocialPulse/internal/api/config"
	"SocialPulse/internal/api/handler"
	"SocialPulse/internal/job"
	"SocialPulse/internal/pkg/cron"
	"SocialPulse/internal/pkg/kafka"
	"SocialPulse/internal/pkg/predictor"
	"SocialPulse/internal/repository"
	"SocialPulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	contentMetricRepo := repository.NewContentMetricRepository(db)
	hashtagRepo := repository.NewHashtagRepository(db)
	hashtagMetricRepo := repository.NewHashtagMetricRepository(db)
	userMetricRepo := repository.NewUserEngagementMetricRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)

	estimator := predictor.NewFixedMultiplierEstimator(cfg.Analytics)
	engagementPredictor := predictor.NewHTTPPredictor(cfg.Predictor)

	contentMetricService := service.NewContentMetricService(contentRepo, interactionRepo, contentMetricRepo, estimator)
	hashtagTrendService := service.NewHashtagTrendService(hashtagRepo, hashtagMetricRepo, contentMetricRepo, cfg.Analytics.TrendingSize)
	userMetricService := service.NewUserMetricService(userRepo, contentRepo, interactionRepo, contentMetricRepo, userMetricRepo, estimator)
	userProfileService := service.NewUserProfileService(userRepo, contentRepo, contentMetricRepo, hashtagRepo, userProfileRepo)
	recommendationService := service.NewRecommendationService(userRepo, contentRepo, hashtagRepo, userProfileRepo, engagementPredictor)

	handlers := &api.HandlersGroup{
		ContentMetricHandler:  handler.NewContentMetricHandler(contentMetricService),
		UserMetricHandler:     handler.NewUserMetricHandler(userMetricService),
		HashtagHandler:        handler.NewHashtagHandler(hashtagTrendService),
		UserProfileHandler:    handler.NewUserProfileHandler(userProfileService),
		RecommendationHandler: handler.NewRecommendationHandler(recommendationService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, hashtagRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewContentMetricsJob(contentMetricService, contentRepo),
		job.NewHashtagTrendJob(hashtagTrendService),
		job.NewUserProfileJob(userMetricService, userProfileService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
