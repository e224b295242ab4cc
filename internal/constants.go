package internal

const ApplicationName = "binaudit"
