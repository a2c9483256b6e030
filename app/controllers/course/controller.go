package courses

import "github.com/thatboywest/elearningbackend/app/services"

// Controller exposes course CRUD over HTTP.
type Controller struct {
	courses *services.CourseService
}

func NewController(courses *services.CourseService) *Controller {
	return &Controller{courses: courses}
}
