package handler

import (
	"github.com/go-playground/validator/v10"

	"learnhub/internal/model"
	"learnhub/internal/repository"
	"learnhub/internal/upload"
	"learnhub/internal/validation"
)

var (
	activeStatuses       = []string{string(model.StatusActive), string(model.StatusInactive)}
	subscriptionStatuses = []string{
		string(model.SubscriptionActive),
		string(model.SubscriptionExpired),
		string(model.SubscriptionCancelled),
	}
)

func equalFilter(param, column string) Filter {
	return Filter{Param: param, Scope: func(v string) (repository.Scope, error) {
		return repository.Equal(column, v), nil
	}}
}

func containsFilter(param, column string) Filter {
	return Filter{Param: param, Scope: func(v string) (repository.Scope, error) {
		return repository.Contains(column, v), nil
	}}
}

// idFilter rejects malformed ids with INVALID_ID instead of matching nothing.
func idFilter(param, column string) Filter {
	return Filter{Param: param, Scope: func(v string) (repository.Scope, error) {
		id, err := parseUUID(v)
		if err != nil {
			return nil, err
		}
		return repository.Equal(column, id), nil
	}}
}

// RegisterRules attaches the cross-field rules of the request types to v.
func RegisterRules(v *validation.Validator) {
	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(CreateCourseRequest)
		validation.ReportDecimalLTE(sl, r.DiscountPrice, r.Price, "discount_price", "price")
	}, CreateCourseRequest{})
	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(UpdateCourseRequest)
		validation.ReportDecimalLTE(sl, r.DiscountPrice, r.Price, "discount_price", "price")
	}, UpdateCourseRequest{})

	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(CreateCouponRequest)
		validation.ReportCouponValue(sl, string(r.DiscountType), r.DiscountValue, "discount_value")
	}, CreateCouponRequest{})
	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(UpdateCouponRequest)
		if r.DiscountType != nil {
			validation.ReportCouponValue(sl, string(*r.DiscountType), r.DiscountValue, "discount_value")
		}
	}, UpdateCouponRequest{})

	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(CreateQuestionRequest)
		validation.ReportIndexInRange(sl, r.CorrectOption, len(r.Options), "correct_option")
	}, CreateQuestionRequest{})
	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(UpdateQuestionRequest)
		if r.Options != nil {
			validation.ReportIndexInRange(sl, r.CorrectOption, len(r.Options), "correct_option")
		}
	}, UpdateQuestionRequest{})

	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(UpdateClassRequest)
		reportWindow(sl, r.StartDate, r.EndDate)
	}, UpdateClassRequest{})
	v.RegisterStructRule(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(UpdateSubscriptionRequest)
		reportWindow(sl, r.StartDate, r.EndDate)
	}, UpdateSubscriptionRequest{})
}

// CategoryConfig exposes categories.
func CategoryConfig() ResourceConfig[model.Category] {
	return ResourceConfig[model.Category]{
		NewCreate: func() CreateRequest[model.Category] { return &CreateCategoryRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateCategoryRequest{} },
		Filters:   []Filter{containsFilter("name", "name"), equalFilter("status", "status")},
		Files:     []upload.Field{{Name: "image", Types: upload.ImageTypes}},
		Folder:    "categories",
		Statuses:  activeStatuses,
	}
}

// CourseConfig exposes courses.
func CourseConfig() ResourceConfig[model.Course] {
	return ResourceConfig[model.Course]{
		NewCreate: func() CreateRequest[model.Course] { return &CreateCourseRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateCourseRequest{} },
		Filters: []Filter{
			containsFilter("title", "title"),
			idFilter("categoryId", "category_id"),
			equalFilter("status", "status"),
		},
		Files:    []upload.Field{{Name: "thumbnail", Types: upload.ImageTypes}},
		Folder:   "courses",
		Statuses: activeStatuses,
	}
}

// BookConfig exposes books, paged.
func BookConfig() ResourceConfig[model.Book] {
	return ResourceConfig[model.Book]{
		NewCreate: func() CreateRequest[model.Book] { return &CreateBookRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateBookRequest{} },
		Filters:   []Filter{idFilter("categoryId", "category_id"), equalFilter("status", "status")},
		Paged:     true,
		Search:    []string{"title", "author"},
		Files:     []upload.Field{{Name: "image", Types: upload.ImageTypes}},
		Folder:    "books",
		Statuses:  activeStatuses,
	}
}

// EBookConfig exposes e-books.
func EBookConfig() ResourceConfig[model.EBook] {
	return ResourceConfig[model.EBook]{
		NewCreate: func() CreateRequest[model.EBook] { return &CreateEBookRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateEBookRequest{} },
		Filters: []Filter{
			containsFilter("title", "title"),
			idFilter("categoryId", "category_id"),
			equalFilter("status", "status"),
		},
		Files:    []upload.Field{{Name: "file", Types: upload.DocumentTypes}},
		Folder:   "ebooks",
		Statuses: activeStatuses,
	}
}

// TopicConfig exposes topics.
func TopicConfig() ResourceConfig[model.Topic] {
	return ResourceConfig[model.Topic]{
		NewCreate: func() CreateRequest[model.Topic] { return &CreateTopicRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateTopicRequest{} },
		Filters:   []Filter{containsFilter("name", "name"), idFilter("courseId", "course_id")},
		Statuses:  activeStatuses,
	}
}

// SectionConfig exposes sections in position order.
func SectionConfig() ResourceConfig[model.Section] {
	return ResourceConfig[model.Section]{
		NewCreate: func() CreateRequest[model.Section] { return &CreateSectionRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateSectionRequest{} },
		Filters:   []Filter{containsFilter("name", "name"), idFilter("courseId", "course_id")},
		Order:     "position ASC, created_at DESC",
		Statuses:  activeStatuses,
	}
}

// SubTopicConfig exposes subtopics.
func SubTopicConfig() ResourceConfig[model.SubTopic] {
	return ResourceConfig[model.SubTopic]{
		NewCreate: func() CreateRequest[model.SubTopic] { return &CreateSubTopicRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateSubTopicRequest{} },
		Filters:   []Filter{containsFilter("name", "name"), idFilter("topicId", "topic_id")},
		Statuses:  activeStatuses,
	}
}

// ClassConfig exposes live classes.
func ClassConfig() ResourceConfig[model.Class] {
	return ResourceConfig[model.Class]{
		NewCreate: func() CreateRequest[model.Class] { return &CreateClassRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateClassRequest{} },
		Filters:   []Filter{idFilter("courseId", "course_id"), equalFilter("status", "status")},
		Statuses:  activeStatuses,
	}
}

// AddressConfig exposes addresses.
func AddressConfig() ResourceConfig[model.Address] {
	return ResourceConfig[model.Address]{
		NewCreate: func() CreateRequest[model.Address] { return &CreateAddressRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateAddressRequest{} },
		Filters:   []Filter{idFilter("userId", "user_id")},
	}
}

// OrderConfig exposes orders, paged.
func OrderConfig() ResourceConfig[model.Order] {
	return ResourceConfig[model.Order]{
		NewCreate: func() CreateRequest[model.Order] { return &CreateOrderRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateOrderRequest{} },
		Filters: []Filter{
			idFilter("userId", "user_id"),
			equalFilter("paymentStatus", "payment_status"),
			equalFilter("orderStatus", "order_status"),
		},
		Paged:  true,
		Search: []string{"order_id"},
	}
}

// SubscriptionConfig exposes subscriptions.
func SubscriptionConfig() ResourceConfig[model.Subscription] {
	return ResourceConfig[model.Subscription]{
		NewCreate: func() CreateRequest[model.Subscription] { return &CreateSubscriptionRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateSubscriptionRequest{} },
		Filters: []Filter{
			idFilter("userId", "user_id"),
			idFilter("courseId", "course_id"),
			equalFilter("status", "status"),
		},
		Statuses: subscriptionStatuses,
	}
}

// CouponConfig exposes coupons.
func CouponConfig() ResourceConfig[model.Coupon] {
	return ResourceConfig[model.Coupon]{
		NewCreate: func() CreateRequest[model.Coupon] { return &CreateCouponRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateCouponRequest{} },
		Filters:   []Filter{containsFilter("code", "code"), equalFilter("status", "status")},
		Statuses:  activeStatuses,
	}
}

// NotificationConfig exposes notifications.
func NotificationConfig() ResourceConfig[model.Notification] {
	return ResourceConfig[model.Notification]{
		NewCreate: func() CreateRequest[model.Notification] { return &CreateNotificationRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateNotificationRequest{} },
		Filters:   []Filter{equalFilter("audience", "audience"), equalFilter("status", "status")},
		Statuses:  activeStatuses,
	}
}

// BannerConfig exposes banners in position order.
func BannerConfig() ResourceConfig[model.Banner] {
	return ResourceConfig[model.Banner]{
		NewCreate: func() CreateRequest[model.Banner] { return &CreateBannerRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateBannerRequest{} },
		Filters:   []Filter{equalFilter("status", "status")},
		Order:     "position ASC, created_at DESC",
		Files:     []upload.Field{{Name: "image", Types: upload.ImageTypes}},
		Folder:    "banners",
		Statuses:  activeStatuses,
	}
}

// SeoURLConfig exposes SEO URLs.
func SeoURLConfig() ResourceConfig[model.SeoURL] {
	return ResourceConfig[model.SeoURL]{
		NewCreate: func() CreateRequest[model.SeoURL] { return &CreateSeoURLRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateSeoURLRequest{} },
		Filters:   []Filter{containsFilter("path", "path"), equalFilter("status", "status")},
		Statuses:  activeStatuses,
	}
}

// SeriesConfig exposes test series.
func SeriesConfig() ResourceConfig[model.Series] {
	return ResourceConfig[model.Series]{
		NewCreate: func() CreateRequest[model.Series] { return &CreateSeriesRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateSeriesRequest{} },
		Filters:   []Filter{containsFilter("name", "name"), idFilter("courseId", "course_id")},
		Statuses:  activeStatuses,
	}
}

// InstructionConfig exposes instructions, filterable by series name.
func InstructionConfig() ResourceConfig[model.Instruction] {
	return ResourceConfig[model.Instruction]{
		NewCreate: func() CreateRequest[model.Instruction] { return &CreateInstructionRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateInstructionRequest{} },
		Filters: []Filter{
			{Param: "seriesName", Scope: func(v string) (repository.Scope, error) {
				return repository.SeriesNameContains(v), nil
			}},
			idFilter("seriesId", "series_id"),
		},
		Statuses: activeStatuses,
	}
}

// QuestionConfig exposes questions, paged.
func QuestionConfig() ResourceConfig[model.Question] {
	return ResourceConfig[model.Question]{
		NewCreate: func() CreateRequest[model.Question] { return &CreateQuestionRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateQuestionRequest{} },
		Filters:   []Filter{idFilter("seriesId", "series_id")},
		Paged:     true,
		Search:    []string{"text"},
		Statuses:  activeStatuses,
	}
}

// UserConfig exposes dashboard users, paged.
func UserConfig() ResourceConfig[model.User] {
	return ResourceConfig[model.User]{
		NewCreate: func() CreateRequest[model.User] { return &CreateUserRequest{} },
		NewUpdate: func() UpdateRequest { return &UpdateUserRequest{} },
		Filters:   []Filter{equalFilter("role", "role"), equalFilter("status", "status")},
		Paged:     true,
		Search:    []string{"name", "email"},
		Statuses:  activeStatuses,
	}
}
