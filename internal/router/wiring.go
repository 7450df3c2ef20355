package router

import (
	"time"

	"gorm.io/gorm"

	"learnhub/internal/cache"
	"learnhub/internal/handler"
	"learnhub/internal/model"
	"learnhub/internal/realtime"
	"learnhub/internal/repository"
	"learnhub/internal/service"
)

// Repositories holds the persistence layer of every resource.
type Repositories struct {
	Users         repository.Repository[model.User]
	Categories    repository.Repository[model.Category]
	Courses       repository.Repository[model.Course]
	Books         repository.Repository[model.Book]
	EBooks        repository.Repository[model.EBook]
	Topics        repository.Repository[model.Topic]
	Sections      repository.Repository[model.Section]
	SubTopics     repository.Repository[model.SubTopic]
	Classes       repository.Repository[model.Class]
	Addresses     repository.Repository[model.Address]
	Orders        repository.Repository[model.Order]
	Subscriptions repository.Repository[model.Subscription]
	Coupons       repository.Repository[model.Coupon]
	Notifications repository.Repository[model.Notification]
	Banners       repository.Repository[model.Banner]
	SeoURLs       repository.Repository[model.SeoURL]
	Series        repository.Repository[model.Series]
	Instructions  repository.Repository[model.Instruction]
	Questions     repository.Repository[model.Question]
}

// NewRepositories builds gorm repositories for every resource.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         repository.New[model.User](db),
		Categories:    repository.New[model.Category](db),
		Courses:       repository.New[model.Course](db),
		Books:         repository.New[model.Book](db),
		EBooks:        repository.New[model.EBook](db),
		Topics:        repository.New[model.Topic](db),
		Sections:      repository.New[model.Section](db),
		SubTopics:     repository.New[model.SubTopic](db),
		Classes:       repository.New[model.Class](db),
		Addresses:     repository.New[model.Address](db),
		Orders:        repository.New[model.Order](db),
		Subscriptions: repository.New[model.Subscription](db),
		Coupons:       repository.New[model.Coupon](db),
		Notifications: repository.New[model.Notification](db),
		Banners:       repository.New[model.Banner](db),
		SeoURLs:       repository.New[model.SeoURL](db),
		Series:        repository.New[model.Series](db),
		Instructions:  repository.New[model.Instruction](db),
		Questions:     repository.New[model.Question](db),
	}
}

// Deps are the shared collaborators of the service layer.
type Deps struct {
	Cache       *cache.Client
	Hub         *realtime.Hub
	Uploads     handler.Uploads
	AuthService service.AuthService
	CORSOrigins []string
	Now         func() time.Time
}

// Services exposes the services other components need besides the handlers.
type Services struct {
	Users       service.CRUDService[model.User]
	Maintenance *service.MaintenanceService
}

var (
	categoryRef = repository.Preload{Field: "Category", Columns: model.CategorySummary}
	courseRef   = repository.Preload{Field: "Course", Columns: model.CourseSummary}
	topicRef    = repository.Preload{Field: "Topic", Columns: model.TopicSummary}
	userRef     = repository.Preload{Field: "User", Columns: model.UserSummary}
	seriesRef   = repository.Preload{Field: "Series", Columns: model.SeriesSummary}
	addressRef  = repository.Preload{Field: "Address"}
)

func options[T any](resource string, c *cache.Client, hooks service.Hooks[T], preloads ...repository.Preload) service.Options[T] {
	return service.Options[T]{Resource: resource, Preloads: preloads, Cache: c, Hooks: hooks}
}

// NewHandlers builds the services and HTTP handlers of every resource.
func NewHandlers(r Repositories, d Deps) (Handlers, Services) {
	c, up := d.Cache, d.Uploads
	none := handler.Uploads{}

	var broadcaster service.Broadcaster
	if d.Hub != nil {
		broadcaster = d.Hub
	}
	products := service.NewProductLookup(r.Courses, r.Books, r.EBooks)
	classes := service.NewClassService(r.Classes, options("class", c, service.ClassHooks(), courseRef), d.Now)
	users := service.NewCRUDService(r.Users, options("user", c, service.UserHooks()))

	h := Handlers{
		Auth:      handler.NewAuthHandler(d.AuthService),
		WebSocket: handler.NewWebSocketHandler(d.Hub, d.CORSOrigins),
		Classes:   handler.NewClassHandler(classes),

		Categories: handler.NewResourceHandler(
			service.NewCRUDService(r.Categories, options("category", c, service.Hooks[model.Category]{})),
			handler.CategoryConfig(), up),
		Courses: handler.NewResourceHandler(
			service.NewCRUDService(r.Courses, options("course", c, service.CourseHooks(), categoryRef)),
			handler.CourseConfig(), up),
		Books: handler.NewResourceHandler(
			service.NewCRUDService(r.Books, options("book", c, service.Hooks[model.Book]{}, categoryRef)),
			handler.BookConfig(), up),
		EBooks: handler.NewResourceHandler(
			service.NewCRUDService(r.EBooks, options("ebook", c, service.Hooks[model.EBook]{}, categoryRef)),
			handler.EBookConfig(), up),
		Topics: handler.NewResourceHandler(
			service.NewCRUDService(r.Topics, options("topic", c, service.Hooks[model.Topic]{}, courseRef)),
			handler.TopicConfig(), none),
		Sections: handler.NewResourceHandler(
			service.NewCRUDService(r.Sections, options("section", c, service.Hooks[model.Section]{}, courseRef)),
			handler.SectionConfig(), none),
		SubTopics: handler.NewResourceHandler(
			service.NewCRUDService(r.SubTopics, options("subtopic", c, service.Hooks[model.SubTopic]{}, topicRef)),
			handler.SubTopicConfig(), none),
		Class: handler.NewResourceHandler[model.Class](classes, handler.ClassConfig(), none),
		Addresses: handler.NewResourceHandler(
			service.NewCRUDService(r.Addresses, options("address", c, service.Hooks[model.Address]{}, userRef)),
			handler.AddressConfig(), none),
		Orders: handler.NewResourceHandler(
			service.NewCRUDService(r.Orders, options("order", c, service.OrderHooks(products, nil), userRef, addressRef)),
			handler.OrderConfig(), none),
		Subscriptions: handler.NewResourceHandler(
			service.NewCRUDService(r.Subscriptions, options("subscription", c, service.SubscriptionHooks(), userRef, courseRef)),
			handler.SubscriptionConfig(), none),
		Coupons: handler.NewResourceHandler(
			service.NewCRUDService(r.Coupons, options("coupon", c, service.CouponHooks())),
			handler.CouponConfig(), none),
		Notifications: handler.NewResourceHandler(
			service.NewCRUDService(r.Notifications, options("notification", c, service.NotificationHooks(broadcaster))),
			handler.NotificationConfig(), none),
		Banners: handler.NewResourceHandler(
			service.NewCRUDService(r.Banners, options("banner", c, service.Hooks[model.Banner]{})),
			handler.BannerConfig(), up),
		SeoURLs: handler.NewResourceHandler(
			service.NewCRUDService(r.SeoURLs, options("seo url", c, service.SeoURLHooks())),
			handler.SeoURLConfig(), none),
		Series: handler.NewResourceHandler(
			service.NewCRUDService(r.Series, options("series", c, service.Hooks[model.Series]{}, courseRef)),
			handler.SeriesConfig(), none),
		Instructions: handler.NewResourceHandler(
			service.NewCRUDService(r.Instructions, options("instruction", c, service.Hooks[model.Instruction]{}, seriesRef)),
			handler.InstructionConfig(), none),
		Questions: handler.NewResourceHandler(
			service.NewCRUDService(r.Questions, options("question", c, service.QuestionHooks(), seriesRef)),
			handler.QuestionConfig(), none),
		Users: handler.NewResourceHandler(users, handler.UserConfig(), none),
	}

	return h, Services{
		Users:       users,
		Maintenance: service.NewMaintenanceService(r.Subscriptions, r.Coupons, d.Now),
	}
}
