package apierrors

const (
	MsgInvalidPayload    = "invalidPayload"
	MsgUnauthenticated   = "notAuthenticated"
	MsgNotAuthorized     = "notAuthorized"
	MsgTaskNotFound      = "taskNotFound"
	MsgCategoryNotFound  = "categoryNotFound"
	MsgTagNotFound       = "tagNotFound"
	MsgNoteNotFound      = "noteNotFound"
	MsgUserNotFound      = "userNotFound"
	MsgCategoryExists    = "categoryExists"
	MsgTagExists         = "tagExists"
	MsgUserExists        = "userExists"
	MsgValidationFailed  = "validationFailed"
	MsgInvalidCredential = "invalidCredentials"
	MsgServerError       = "serverError"
)
