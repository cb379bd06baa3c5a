package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RevisionIDLength é o tamanho dos identificadores de revisão de snapshot
const RevisionIDLength = 10

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, RevisionIDLength)
}
