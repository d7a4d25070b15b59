package repositories

import (
	"sync"
	"time"

	"gigbook_backend/internal/models"
)

// ProposalRegistry - потокобезопасное хранилище предложений.
// Все переходы статуса выполняются внутри критической секции:
// проверка и запись атомарны, два конкурентных Hire по одному
// предложению не могут пройти оба.
//
// Наружу отдаются только глубокие копии (Clone), чтобы вызывающий
// код не мог мутировать внутреннее состояние в обход мьютекса.
type ProposalRegistry struct {
	mu        sync.RWMutex
	proposals map[uint]*models.Proposal
	order     []uint // порядок создания, для стабильной выдачи списков
	nextID    uint
}

func NewProposalRegistry() *ProposalRegistry {
	return &ProposalRegistry{
		proposals: make(map[uint]*models.Proposal),
		nextID:    1,
	}
}

// Create регистрирует новое предложение со статусом pending и
// следующим последовательным id. Дубликаты не отсекаются: артист
// может подать несколько предложений на один гиг.
func (r *ProposalRegistry) Create(gigID, artistID uint, hourlyRate, fullGigAmount *float64, coverLetter string) *models.Proposal {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &models.Proposal{
		ID:            r.nextID,
		GigID:         gigID,
		ArtistID:      artistID,
		HourlyRate:    hourlyRate,
		FullGigAmount: fullGigAmount,
		CoverLetter:   coverLetter,
		Status:        models.ProposalStatusPending,
		CreatedAt:     time.Now(),
	}
	r.nextID++
	r.proposals[p.ID] = p
	r.order = append(r.order, p.ID)

	return p.Clone()
}

func (r *ProposalRegistry) FindByID(id uint) (*models.Proposal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.proposals[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// FindByGig возвращает все предложения гига в порядке создания
func (r *ProposalRegistry) FindByGig(gigID uint) []*models.Proposal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Proposal
	for _, id := range r.order {
		if p := r.proposals[id]; p.GigID == gigID {
			result = append(result, p.Clone())
		}
	}
	return result
}

func (r *ProposalRegistry) FindByGigAndArtist(gigID, artistID uint) (*models.Proposal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		p := r.proposals[id]
		if p.GigID == gigID && p.ArtistID == artistID {
			return p.Clone(), true
		}
	}
	return nil, false
}

// Hire переводит предложение pending -> in-progress и фиксирует hiredAt.
// Переход односторонний: повторный найм возвращает ErrProposalNotPending,
// hiredAt первого успешного найма не перезаписывается.
func (r *ProposalRegistry) Hire(id uint, at time.Time) (*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[id]
	if !ok {
		return nil, ErrProposalNotFound
	}
	if p.Status != models.ProposalStatusPending {
		return nil, ErrProposalNotPending
	}

	p.Status = models.ProposalStatusInProgress
	p.HiredAt = &at

	return p.Clone(), nil
}

// AttachCompletionRequest вешает на предложение артиста запрос о
// завершении. Требует статус in-progress. Повторный запрос до
// подтверждения молча заменяет предыдущий.
func (r *ProposalRegistry) AttachCompletionRequest(gigID, artistID uint, code, locationAddress string, at time.Time) (*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var p *models.Proposal
	for _, id := range r.order {
		candidate := r.proposals[id]
		if candidate.GigID == gigID && candidate.ArtistID == artistID {
			p = candidate
			break
		}
	}
	if p == nil {
		return nil, ErrNoProposalForGig
	}
	if p.Status != models.ProposalStatusInProgress {
		return nil, ErrProposalNotInProgress
	}

	p.CompletionRequest = &models.CompletionRequest{
		RequestedAt:      at,
		ConfirmationCode: code,
		LocationAddress:  locationAddress,
		Status:           models.CompletionStatusPending,
	}

	return p.Clone(), nil
}

// ConfirmCompletion закрывает рукопожатие о завершении: первый
// подходящий запрос по гигу переводится в confirmed, предложение -
// в completed, оценка записывается. Все проверки и мутации в одной
// критической секции, при ошибке состояние не меняется.
func (r *ProposalRegistry) ConfirmCompletion(gigID, venueUserID uint, rating models.VenueRating, at time.Time) (*models.Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var p *models.Proposal
	for _, id := range r.order {
		candidate := r.proposals[id]
		if candidate.GigID == gigID && candidate.CompletionRequest != nil {
			p = candidate
			break
		}
	}
	if p == nil {
		// различаем "нет предложений вовсе" и "есть, но без запроса"
		for _, id := range r.order {
			if r.proposals[id].GigID == gigID {
				return nil, ErrNoCompletionRequest
			}
		}
		return nil, ErrNoProposalForGig
	}
	if p.CompletionRequest.Status != models.CompletionStatusPending {
		return nil, ErrCompletionNotPending
	}

	p.Status = models.ProposalStatusCompleted
	p.CompletionRequest.Status = models.CompletionStatusConfirmed
	p.CompletionRequest.ConfirmedAt = &at
	p.CompletionRequest.ConfirmedBy = venueUserID
	p.CompletionRequest.VenueRating = &rating

	return p.Clone(), nil
}
