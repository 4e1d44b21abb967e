package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore guarda um arquivo JSON por chave dentro de um diretório. Faz o
// papel da cópia local do movimento: leitura rápida e disponível mesmo sem o
// banco no ar.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore cria o diretório se necessário.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório do armazenamento local")
	}
	return &FileStore{dir: dir}, nil
}

// pathFor converte a chave em nome de arquivo. Os dois-pontos das chaves
// datadas (cashFlowData:2024-01-15) não são válidos em todo filesystem.
func (s *FileStore) pathFor(key string) string {
	name := strings.ReplaceAll(key, ":", "_")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Get(_ context.Context, key string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pathFor(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "registro corrompido na chave %s", key)
	}

	return &record, nil
}

// Set grava em arquivo temporário e renomeia, mantendo a escrita atômica por
// chave.
func (s *FileStore) Set(_ context.Context, key string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar chave %s", key)
	}

	target := s.pathFor(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar chave %s", key)
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrapf(err, "erro ao efetivar gravação da chave %s", key)
	}

	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.pathFor(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "erro ao remover chave %s", key)
	}
	return nil
}
