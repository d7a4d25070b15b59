package models

type UserRole string
type ProposalStatus string
type CompletionStatus string
type RatingTag string

const (
	UserRoleArtist UserRole = "artist"
	UserRoleVenue  UserRole = "venue"

	// Статусы предложения: строго вперед, без обратных переходов
	ProposalStatusPending    ProposalStatus = "pending"
	ProposalStatusInProgress ProposalStatus = "in-progress"
	ProposalStatusCompleted  ProposalStatus = "completed"

	CompletionStatusPending   CompletionStatus = "pending"
	CompletionStatusConfirmed CompletionStatus = "confirmed"

	RatingTagProfessional RatingTag = "Professional"
	RatingTagFun          RatingTag = "Fun"
	RatingTagCrowdPleaser RatingTag = "Crowd Pleaser"
	RatingTagOther        RatingTag = "Other"
)

// ValidRatingTags - закрытый словарь тегов оценки
var ValidRatingTags = map[RatingTag]bool{
	RatingTagProfessional: true,
	RatingTagFun:          true,
	RatingTagCrowdPleaser: true,
	RatingTagOther:        true,
}

// InvalidRatingTags возвращает теги, не входящие в словарь (в исходном порядке)
func InvalidRatingTags(tags []RatingTag) []RatingTag {
	var invalid []RatingTag
	for _, tag := range tags {
		if !ValidRatingTags[tag] {
			invalid = append(invalid, tag)
		}
	}
	return invalid
}
