package reward

const (
	LogMsgAwardCalled       = "AwardForTaskCompletion called"
	LogMsgTaskRewardGranted = "Task reward granted"

	ErrContextCreditFailed = "failed to credit account"
)
