// seedadmin crea el usuario administrador inicial si la tabla de usuarios
// está vacía. Pensado para el primer arranque de un ambiente nuevo.
//
// Uso: go run ./cmd/seedadmin
// Lee la misma configuración de base de datos que el servidor (DATABASE_URL
// o DB_HOST, DB_PORT, etc.). Es idempotente: si ya existen usuarios no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yerbsoft/inventario-api/internal/infrastructure/postgres"
	"github.com/yerbsoft/inventario-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminNombre   = "Administrador Sistema"
	adminEmail    = "admin@sistema.com"
	adminPassword = "admin123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var total int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&total); err != nil {
		fmt.Fprintf(os.Stderr, "Contar usuarios: %v\n", err)
		os.Exit(1)
	}
	if total > 0 {
		fmt.Printf("Ya existen %d usuarios, no se crea el administrador\n", total)
		return
	}

	// Asegurar el rol Administrador antes de insertar el usuario.
	var idRol int64
	err = pool.QueryRow(ctx, `SELECT id_rol FROM roles WHERE nombre_rol = 'Administrador'`).Scan(&idRol)
	if err != nil {
		err = pool.QueryRow(ctx, `
			INSERT INTO roles (nombre_rol, descripcion, permisos, activo)
			VALUES ('Administrador', 'Acceso completo al sistema', '{"all": true}', TRUE)
			RETURNING id_rol`).Scan(&idRol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear rol Administrador: %v\n", err)
			os.Exit(1)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar hash: %v\n", err)
		os.Exit(1)
	}

	var idUsuario int64
	err = pool.QueryRow(ctx, `
		INSERT INTO usuarios (nombre_completo, email, password_hash, id_rol, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, 'Activo', now())
		RETURNING id_usuario`,
		adminNombre, adminEmail, string(hash), idRol).Scan(&idUsuario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario administrador: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario administrador creado (id %d): %s\n", idUsuario, adminEmail)
}
