package ports

// Haptics gives tactile-style feedback
type Haptics interface {
	// Impact is the soft tap on user commands
	Impact()
	// Success is the completion feedback
	Success()
}
