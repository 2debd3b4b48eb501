package careflow

// Version is the current release version of careflow.
const Version = "0.1.0"
