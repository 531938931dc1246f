// internal/models/conversation.go
package models

// MessageRole identifies the author of a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ConversationMessage is a single message from the hosting-needs conversation.
// Messages are supplied by the caller and never mutated.
type ConversationMessage struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// WebsiteType categorizes the kind of site the user wants to host.
type WebsiteType string

const (
	WebsiteStatic    WebsiteType = "static"
	WebsiteDynamic   WebsiteType = "dynamic"
	WebsiteEcommerce WebsiteType = "ecommerce"
	WebsiteBlog      WebsiteType = "blog"
	WebsiteAPI       WebsiteType = "api"
)

// TrafficLevel is the expected traffic volume.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

// DatabaseKind is the detected database flavour.
type DatabaseKind string

const (
	DatabaseRelational DatabaseKind = "relational"
	DatabaseNoSQL      DatabaseKind = "nosql"
	DatabaseGeneral    DatabaseKind = "general"
)

// Region is the user's preferred deployment geography.
type Region string

const (
	RegionUS   Region = "us"
	RegionEU   Region = "eu"
	RegionAsia Region = "asia"
)

// ExtractedSignals is the flat set of categorical facts pulled from the
// conversation text. The zero value of every field means "not mentioned";
// downstream rules must tolerate unset fields. A signals value is created
// once per analysis and never mutated afterwards.
type ExtractedSignals struct {
	WebsiteType       WebsiteType  `json:"website_type,omitempty"`
	TrafficLevel      TrafficLevel `json:"traffic_level,omitempty"`
	DatabaseKind      DatabaseKind `json:"database_kind,omitempty"`
	StorageAmountGBs  int          `json:"storage_amount_gbs,omitempty"`
	BudgetUSD         int          `json:"budget_usd,omitempty"`
	AvailabilityLevel string       `json:"availability_level,omitempty"` // only "high" exists
	ScalingRequired   bool         `json:"scaling_required,omitempty"`
	Region            Region       `json:"region_preference,omitempty"`
}
