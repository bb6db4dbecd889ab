package heuristic

import "github.com/studyforge/cardgen-api/internal/domain"

// Question templates per difficulty tier. Each template carries exactly
// one %s slot for the extracted key term. Selection within a tier is by
// unit index modulo the tier size, so templates are reused rather than
// exhausted once a text yields more than ten units.
var easyTemplates = [10]string{
	"What is mentioned about %s?",
	"According to the text, what can you say about %s?",
	"What does the document say regarding %s?",
	"What is %s?",
	"How is %s described?",
	"What information is given about %s?",
	"What does the text tell us about %s?",
	"What is the main point about %s?",
	"What can we learn about %s?",
	"What is stated regarding %s?",
}

var mediumTemplates = [10]string{
	"How does %s relate to the main topic?",
	"What are the key points about %s?",
	"Explain the significance of %s.",
	"What is the relationship between %s and other concepts?",
	"How would you summarize the information about %s?",
	"What conclusions can be drawn about %s?",
	"What is the importance of %s?",
	"How does %s contribute to the overall understanding?",
	"What are the implications of %s?",
	"How does %s connect to the broader context?",
}

var hardTemplates = [10]string{
	"Analyze the relationship between %s and other concepts.",
	"What are the implications of %s?",
	"How would you evaluate the importance of %s?",
	"What are the underlying principles behind %s?",
	"How does %s challenge or support existing knowledge?",
	"What are the broader consequences of %s?",
	"How would you critically assess %s?",
	"What are the theoretical foundations of %s?",
	"How does %s fit into the larger framework?",
	"What are the potential applications of %s?",
}

// fallbackQuestions are used for a unit when no key term is found.
var fallbackQuestions = [10]string{
	"What is the main point of this statement?",
	"What information is provided here?",
	"What does this text explain?",
	"What is being described?",
	"What is the key message?",
	"What concept is presented?",
	"What idea is conveyed?",
	"What is being discussed?",
	"What topic is covered?",
	"What subject is addressed?",
}

// sectionQuestions are used for padding cards built from text chunks.
var sectionQuestions = [10]string{
	"What is discussed in this section?",
	"What information is presented here?",
	"What key points are mentioned?",
	"What concepts are explained?",
	"What details are provided?",
	"What topics are covered?",
	"What ideas are presented?",
	"What is the focus of this content?",
	"What subject matter is addressed?",
	"What themes are explored?",
}

// questionTemplates returns the template tier for a difficulty level.
// Anything other than Easy or Medium selects the Hard tier.
func questionTemplates(difficulty domain.Difficulty) [10]string {
	switch difficulty {
	case domain.DifficultyEasy:
		return easyTemplates
	case domain.DifficultyMedium:
		return mediumTemplates
	default:
		return hardTemplates
	}
}
