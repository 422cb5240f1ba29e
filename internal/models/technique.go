package models

// Technique is one suggested coping technique for a distortion type.
type Technique struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Exercise    string `json:"exercise"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
}

// TechniqueBundle is the response payload of the technique lookup
// endpoint: a distortion-specific set of techniques plus optional
// personalized framing.
type TechniqueBundle struct {
	DistortionName        string      `json:"distortion_name"`
	DistortionDescription string      `json:"distortion_description"`
	PersonalizedAdvice    string      `json:"personalized_advice,omitempty"`
	Techniques            []Technique `json:"techniques,omitempty"`
	NextSteps             []string    `json:"next_steps,omitempty"`
}

// TechniqueRequest is the request body for the technique lookup endpoint.
type TechniqueRequest struct {
	DistortionType string `json:"distortion_type"`
	UserContext    string `json:"user_context,omitempty"`
}
