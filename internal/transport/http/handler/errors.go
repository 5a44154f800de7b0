package handler

const (
	errInternalServer      = "Internal server error"
	errNotAuthorized       = "Not authorized"
	errInvalidCredentials  = "Invalid email or password"
	errEmailTaken          = "Email already exists"
	errUserNotFound        = "User not found"
	errJobNotFound         = "Job not found"
	errApplicationNotFound = "Application not found"
	errAlreadyApplied      = "You have already applied for this job"
	errSavedJobNotFound    = "Saved job not found"
	errJobAlreadySaved     = "Job already saved"
	errMessageNotFound     = "Message not found"
	errInvalidStatus       = "Invalid application status"
)
