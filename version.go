package scentquiz

// Version of scentquiz, set at release time.
const Version = "v0.1.0"
