package repositories

import "errors"

// Сентинельные ошибки слоя хранения. Сервисный слой переводит их
// в доменные AppError с сообщениями для клиента.
var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalNotPending    = errors.New("proposal is no longer pending")
	ErrProposalNotInProgress = errors.New("proposal is not in progress")
	ErrNoProposalForGig      = errors.New("no proposal found for this gig")
	ErrNoCompletionRequest   = errors.New("no completion request found")
	ErrCompletionNotPending  = errors.New("completion request is not in pending status")
)
