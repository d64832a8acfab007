package effect

const LogMsgEffectApplied = "Item effect applied"
