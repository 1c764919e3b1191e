package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID cria um identificador curto para chaves primárias de linhas
// sincronizadas; 12 caracteres alfanuméricos são suficientes para o volume
// de insights diários sem colisão prática
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
