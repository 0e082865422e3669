package circuitbreaker

type CircuitBreaker[Request any, Response any] interface {
	Execute(request Request, task func(Request) (Response, error)) (Response, error)
}
