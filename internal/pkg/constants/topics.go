package constants

// NSQ topics for domain events
const (
	TopicUserCreated  = "prospection.user.created"
	TopicUserDeleted  = "prospection.user.deleted"
	TopicVisitUpdated = "prospection.visit.updated"
)
