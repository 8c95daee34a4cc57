package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Tamanho dos ids das mensagens do assistente
const idLength = 12

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
