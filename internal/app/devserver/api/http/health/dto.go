package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - статус работоспособности dev-сервера.
type Response struct {
	Status string `json:"status" example:"OK" doc:"Статус сервиса"`
}
