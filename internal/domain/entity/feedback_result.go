package entity

// FeedbackResult is the decoded outcome of a successful submission.
// GithubIssue is empty when the server created no tracker entry.
type FeedbackResult struct {
	Success     bool
	FeedbackID  string
	GithubIssue string
}
