package constants

// ユーザーロール
const (
	RoleParent = "parent"
	RoleMember = "member"
)

const (
	DefaultAdminEmail = "mize8@hotmail.com"
	AdminName         = "Admin"

	// AnonymousClaimant replaces the claimant's name for non-parent viewers.
	AnonymousClaimant = "Anonymous"

	SessionCookie = "session"
	FlashCookie   = "flash"
	ContextUser   = "user"
)

// フラッシュメッセージ
const (
	MsgEmailRegistered     = "Email already registered"
	MsgRegistrationSuccess = "Registration successful. Please log in."
	MsgInvalidCredentials  = "Invalid credentials"
	MsgFieldsRequired      = "All fields are required"
	MsgGiftNameRequired    = "Gift name is required"
	MsgGiftAdded           = "Gift added!"
	MsgGiftClaimed         = "Gift claimed!"
	MsgNotAllowed          = "Not allowed"
)

// エラーメッセージ
const (
	ErrGiftNotFound = "Gift not found"
	ErrUnexpected   = "Unexpected error"
)
