package runtime

// Bot copy. Kept in one place so hosts and tests can refer to it.
const (
	MsgDidNotCatch       = "I didn't catch that. Could you please reply?"
	MsgEnglishOnly       = "Sorry, I currently support English only. Could you please type your message in English?"
	MsgUseWords          = "I see emojis! Could you please type your message using words?"
	MsgOneQuestion       = "I want to help with each question separately. Could you please ask one question at a time?"
	MsgDeescalate        = "I'm here to help. Let's work together to solve your issue."
	MsgGreeting          = "Hi! I can help you track your lost package. Do you have a tracking number? (yes/no)"
	MsgAskTrackingNumber = "Great! Please enter your tracking number (e.g., AB123456789CD)."
	MsgAskAlternateID    = "No problem. Please provide your order number or the email used during purchase."
	MsgYesOrNo           = "Please reply with 'yes' or 'no'."
	MsgRestart           = "No worries! Let's start over."
	MsgURL               = "That looks like a URL, not a tracking number. Please enter just the tracking number."
	MsgNoResults         = "Hmm... that tracking number looks valid but isn't showing results. Would you like to talk to a human agent?"
	MsgInactive          = "This tracking number appears to be outdated or inactive. Would you like to talk to an agent?"
	MsgDelivered         = "📦 Good news! Your package was delivered yesterday. Did you receive it? (yes/no)"
	MsgTooShort          = "That looks a bit short. Tracking numbers are usually at least 10 characters."
	MsgTooLong           = "That seems too long. Can you double-check your tracking number?"
	MsgAlphanumericOnly  = "Tracking numbers only use letters and numbers. Please try again."
	MsgBadFormat         = "Hmm, that doesn't look right. A tracking number looks like AB123456789CD. Please try again."
	MsgTooManyErrors     = "I'm having trouble reading the tracking number. Would you like to talk to a human agent?"
	MsgFoundAtSorting    = "Found it! Your package is currently at our sorting center and should be on its way soon."
	MsgNotFound          = "Sorry, I couldn't find your package with that information. Would you like to talk to a human agent?"
	MsgConnecting        = "Connecting you to a human agent now..."
	MsgAgentWillCall     = "An employee has been notified and will call you shortly."
	MsgAnythingElse      = "Okay, let me know if you need anything else."
	MsgGladToHear        = "Glad to hear that! Let me know if you need anything else."
	MsgSorryHandoff      = "I'm sorry to hear that. I'll connect you to a human agent for further help. Would you like me to do that now?"
	MsgReceivedYesOrNo   = "Please reply with 'yes' or 'no'. Did you receive your package?"
	MsgClosing           = "Thanks for using the package tracker bot! Start a new session to begin again."
	MsgIdleReminder      = "Are you still there? Let me know if you need help."
)
